package dynamo

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	pages []*dynamodb.ScanOutput
	calls int
}

func (f *fakeClient) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	out := f.pages[f.calls]
	f.calls++
	return out, nil
}

func row(name string, ids ...string) map[string]types.AttributeValue {
	r := map[string]types.AttributeValue{
		"name": &types.AttributeValueMemberS{Value: name},
	}
	if len(ids) > 0 {
		r["items"] = &types.AttributeValueMemberNS{Value: ids}
	}
	return r
}

func TestStoreLoadPaginates(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ScanOutput{
			{
				Items: []map[string]types.AttributeValue{
					row("Tank Gear", "100", "18832"),
				},
				LastEvaluatedKey: row("Tank Gear"),
			},
			{
				Items: []map[string]types.AttributeValue{
					row("Healing Gear", "300"),
					row("Empty Set"),
				},
			},
		},
	}

	s := New(client, "itemquery-sets")
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, 2, client.calls)

	sets := s.Sets()
	require.Len(t, sets, 3)

	// Ordered by name.
	assert.Equal(t, "Empty Set", sets[0].Name)
	assert.Equal(t, "Healing Gear", sets[1].Name)
	assert.Equal(t, "Tank Gear", sets[2].Name)

	assert.True(t, sets[2].Contains(18832))
	assert.False(t, sets[0].Contains(18832))
}

func TestStoreLoadBadRow(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ScanOutput{
			{
				Items: []map[string]types.AttributeValue{
					row("Tank Gear", "not-a-number"),
				},
			},
		},
	}

	s := New(client, "itemquery-sets")
	assert.Error(t, s.Load(context.Background()))
	assert.Empty(t, s.Sets())
}

func TestStoreReloadRateLimited(t *testing.T) {
	client := &fakeClient{
		pages: []*dynamodb.ScanOutput{
			{Items: []map[string]types.AttributeValue{row("Tank Gear", "1")}},
		},
	}

	s := New(client, "itemquery-sets")
	require.NoError(t, s.Load(context.Background()))

	// The immediate reload is dropped by the limiter, so the fake's
	// single page is never requested twice.
	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, 1, client.calls)
}
