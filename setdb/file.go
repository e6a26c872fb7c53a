package setdb

import (
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SnapshotFile serves sets decoded from a local snapshot file.
type SnapshotFile struct {
	path    string
	limiter *rate.Limiter

	mu   sync.RWMutex
	sets []Set
}

// reloadInterval caps how often a SnapshotFile re-reads its backing
// file. Hosts tend to call Reload from UI events, which can arrive in
// bursts.
const reloadInterval = 30 * time.Second

// OpenSnapshot opens path and decodes it eagerly, so a malformed file
// fails at startup rather than at first search.
func OpenSnapshot(path string) (*SnapshotFile, error) {
	s := &SnapshotFile{
		path:    path,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
	}
	s.limiter.Allow() // the initial load spends the burst token
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Sets returns the most recently loaded sets.
func (s *SnapshotFile) Sets() []Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sets
}

// Reload re-reads the snapshot file. Calls beyond the rate limit are
// dropped without error; the previous sets stay in place on failure.
func (s *SnapshotFile) Reload() error {
	if !s.limiter.Allow() {
		return nil
	}
	return s.load()
}

func (s *SnapshotFile) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	sets, err := Decode(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sets = sets
	s.mu.Unlock()

	return nil
}
