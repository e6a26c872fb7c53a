// Package s3 provides an Amazon S3 backed set database.
//
// The store downloads one snapshot object (see setdb.Encode) and serves
// it from memory, so the engine's set lookups never touch the network.
package s3

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/time/rate"

	"github.com/hupe1980/itemquery/setdb"
)

// reloadInterval caps how often Reload hits S3.
const reloadInterval = time.Minute

// Store implements setdb.Provider backed by a snapshot object in S3.
type Store struct {
	downloader *manager.Downloader
	bucket     string
	key        string
	limiter    *rate.Limiter

	mu   sync.RWMutex
	sets []setdb.Set
}

// New creates a store reading s3://bucket/key. Call Load before
// injecting it into an engine.
func New(client manager.DownloadAPIClient, bucket, key string) *Store {
	return &Store{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		key:        key,
		limiter:    rate.NewLimiter(rate.Every(reloadInterval), 1),
	}
}

// NewFromEnv creates a store using the default AWS credential chain.
func NewFromEnv(ctx context.Context, bucket, key string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return New(s3.NewFromConfig(cfg), bucket, key), nil
}

// Load downloads and decodes the snapshot object.
func (s *Store) Load(ctx context.Context) error {
	s.limiter.Allow() // the initial load spends the burst token
	return s.fetch(ctx)
}

// Reload re-downloads the snapshot. Calls beyond the rate limit are
// dropped without error; the previous sets stay in place on failure.
func (s *Store) Reload(ctx context.Context) error {
	if !s.limiter.Allow() {
		return nil
	}
	return s.fetch(ctx)
}

func (s *Store) fetch(ctx context.Context) error {
	buf := manager.NewWriteAtBuffer(nil)
	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return err
	}

	sets, err := setdb.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sets = sets
	s.mu.Unlock()

	return nil
}

// Sets returns the most recently loaded sets.
func (s *Store) Sets() []setdb.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sets
}
