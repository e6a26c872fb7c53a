// Package dynamo provides a DynamoDB backed set database.
//
// Each table row is one set: partition key "name" (S) and an "items"
// number-set attribute holding the item ids. Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name itemquery-sets \
//	  --attribute-definitions AttributeName=name,AttributeType=S \
//	  --key-schema AttributeName=name,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
//
// Like the other remote backends, the store loads everything up front
// and serves the engine from memory.
package dynamo

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/time/rate"

	"github.com/hupe1980/itemquery/setdb"
)

// Client is the subset of the DynamoDB API the store uses.
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// reloadInterval caps how often Reload scans the table.
const reloadInterval = time.Minute

// Store implements setdb.Provider backed by a DynamoDB table.
type Store struct {
	client  Client
	table   string
	limiter *rate.Limiter

	mu   sync.RWMutex
	sets []setdb.Set
}

// New creates a store reading the given table. Call Load before
// injecting it into an engine.
func New(client Client, table string) *Store {
	return &Store{
		client:  client,
		table:   table,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
	}
}

// Load scans the table and replaces the in-memory sets.
func (s *Store) Load(ctx context.Context) error {
	s.limiter.Allow() // the initial load spends the burst token
	return s.scan(ctx)
}

// Reload re-scans the table. Calls beyond the rate limit are dropped
// without error; the previous sets stay in place on failure.
func (s *Store) Reload(ctx context.Context) error {
	if !s.limiter.Allow() {
		return nil
	}
	return s.scan(ctx)
}

func (s *Store) scan(ctx context.Context) error {
	doc := make(map[string][]uint32)

	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}

		for _, row := range out.Items {
			name, ids, err := decodeRow(row)
			if err != nil {
				return err
			}
			doc[name] = ids
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sets := setdb.NewStatic(doc).Sets()

	s.mu.Lock()
	s.sets = sets
	s.mu.Unlock()

	return nil
}

func decodeRow(row map[string]types.AttributeValue) (string, []uint32, error) {
	nameAttr, ok := row["name"].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil, fmt.Errorf("dynamo: row without string attribute %q", "name")
	}

	itemsAttr, ok := row["items"].(*types.AttributeValueMemberNS)
	if !ok {
		// A set with no members is legal.
		return nameAttr.Value, nil, nil
	}

	ids := make([]uint32, 0, len(itemsAttr.Value))
	for _, raw := range itemsAttr.Value {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return "", nil, fmt.Errorf("dynamo: set %q has non-numeric item id %q: %w", nameAttr.Value, raw, err)
		}
		ids = append(ids, uint32(id))
	}
	return nameAttr.Value, ids, nil
}

// Sets returns the most recently loaded sets.
func (s *Store) Sets() []setdb.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sets
}
