// Package minio provides a MinIO / S3-compatible set database.
//
// The store downloads one snapshot object (see setdb.Encode) and serves
// it from memory. Use it when the deployment points at MinIO or any
// S3-compatible endpoint instead of AWS itself.
package minio

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"golang.org/x/time/rate"

	"github.com/hupe1980/itemquery/setdb"
)

// ErrNotFound is returned when the snapshot object does not exist.
var ErrNotFound = errors.New("minio: snapshot object not found")

// reloadInterval caps how often Reload hits the endpoint.
const reloadInterval = time.Minute

// Store implements setdb.Provider backed by a snapshot object in a
// MinIO bucket.
type Store struct {
	client  *minio.Client
	bucket  string
	key     string
	limiter *rate.Limiter

	mu   sync.RWMutex
	sets []setdb.Set
}

// New creates a store reading bucket/key. Call Load before injecting it
// into an engine.
func New(client *minio.Client, bucket, key string) *Store {
	return &Store{
		client:  client,
		bucket:  bucket,
		key:     key,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
	}
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
	if _, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return ErrNotFound
		}
		return err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	sets, err := setdb.Decode(obj)
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
