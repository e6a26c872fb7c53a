package setdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec a snapshot body was written with.
type Compression uint8

const (
	// CompressionNone stores the JSON body as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 frames (fast, modest ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses zstd (better ratio, still cheap to decode).
	CompressionZSTD Compression = 2
)

// Snapshot wire format: 4-byte magic, 1-byte version, 1-byte
// compression, then the (possibly compressed) JSON body mapping set
// names to item-id arrays. The codec byte makes the format
// self-describing, so readers never guess.
var snapshotMagic = [4]byte{'I', 'Q', 'S', 'S'}

const snapshotVersion = 1

// ErrBadSnapshot is returned for data that is not a snapshot or is
// truncated.
var ErrBadSnapshot = errors.New("setdb: malformed snapshot")

// Encode writes the sets as a snapshot to w.
func Encode(w io.Writer, sets []Set, c Compression) error {
	doc := make(map[string][]uint32, len(sets))
	for _, s := range sets {
		if s.Items != nil {
			doc[s.Name] = s.Items.ToArray()
		} else {
			doc[s.Name] = nil
		}
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	header := append(snapshotMagic[:], snapshotVersion, byte(c))
	if _, err := w.Write(header); err != nil {
		return err
	}

	switch c {
	case CompressionNone:
		_, err = w.Write(body)
		return err
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		if _, err := lw.Write(body); err != nil {
			return err
		}
		return lw.Close()
	case CompressionZSTD:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := zw.Write(body); err != nil {
			return err
		}
		return zw.Close()
	default:
		return fmt.Errorf("%w: unknown compression %d", ErrBadSnapshot, c)
	}
}

// Decode reads a snapshot written by Encode. Sets come back ordered by
// name.
func Decode(r io.Reader) ([]Set, error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if [4]byte(header[:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	}
	if header[4] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, header[4])
	}

	var body io.Reader
	switch Compression(header[5]) {
	case CompressionNone:
		body = r
	case CompressionLZ4:
		body = lz4.NewReader(r)
	case CompressionZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		body = zr
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrBadSnapshot, header[5])
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	doc := make(map[string][]uint32)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	return NewStatic(doc).Sets(), nil
}
