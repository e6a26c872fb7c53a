package setdb

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSets() map[string][]uint32 {
	return map[string][]uint32{
		"Tank Gear":    {100, 200, 18832},
		"Healing Gear": {300, 400},
	}
}

func TestStatic(t *testing.T) {
	p := NewStatic(testSets())

	sets := p.Sets()
	require.Len(t, sets, 2)

	// Ordered by name for deterministic enumeration.
	assert.Equal(t, "Healing Gear", sets[0].Name)
	assert.Equal(t, "Tank Gear", sets[1].Name)

	assert.True(t, sets[1].Contains(18832))
	assert.False(t, sets[1].Contains(300))
	assert.True(t, sets[0].Contains(300))

	assert.False(t, Set{}.Contains(1))
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, NewStatic(testSets()).Sets(), c))

		sets, err := Decode(&buf)
		require.NoError(t, err, "compression %d", c)
		require.Len(t, sets, 2)
		assert.Equal(t, "Healing Gear", sets[0].Name)
		assert.True(t, sets[1].Contains(18832))
	}
}

func TestSnapshotDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrBadSnapshot)

	_, err = Decode(bytes.NewReader([]byte("not a snapshot at all")))
	assert.ErrorIs(t, err, ErrBadSnapshot)

	// Right magic, unsupported version.
	_, err = Decode(bytes.NewReader([]byte{'I', 'Q', 'S', 'S', 99, 0}))
	assert.ErrorIs(t, err, ErrBadSnapshot)

	// Right header, garbage body.
	_, err = Decode(bytes.NewReader([]byte{'I', 'Q', 'S', 'S', 1, 0, '{', 'x'}))
	assert.ErrorIs(t, err, ErrBadSnapshot)
}

func TestSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.snap")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewStatic(testSets()).Sets(), CompressionZSTD))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	p, err := OpenSnapshot(path)
	require.NoError(t, err)

	sets := p.Sets()
	require.Len(t, sets, 2)
	assert.True(t, sets[1].Contains(100))

	// Reloads are rate limited; the immediate second call is a no-op
	// even though the file is now gone.
	require.NoError(t, os.Remove(path))
	assert.NoError(t, p.Reload())
	assert.Len(t, p.Sets(), 2)
}

func TestOpenSnapshotMissing(t *testing.T) {
	_, err := OpenSnapshot(filepath.Join(t.TempDir(), "missing.snap"))
	assert.Error(t, err)
}
