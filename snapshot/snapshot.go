// Package snapshot serializes a correlation window into a compact,
// self-describing byte image for in-process hand-off, e.g. moving a
// window from an ingestion worker to an aggregator over a channel.
//
// A snapshot carries the live samples in physical slot order plus the
// cursor and mode flags, so the decoded engine continues a running
// window exactly where the original left off. Cached regression
// results are not carried; the decoded engine is stale and recomputes
// on its first Calculate.
//
// # Layout
//
// All integers are little-endian:
//
//	offset  size  field
//	0       4     magic "CWSN"
//	4       1     version
//	5       1     compression type (format.CompressionType)
//	6       1     flag bits (0x1 running, 0x2 R², 0x4 E²)
//	7       1     reserved, zero
//	8       4     capacity
//	12      4     count
//	16      4     cursor
//	20      4     payload length in bytes
//	24      ...   payload: X column then Y column, count raw float64
//	              bits each, optionally compressed
//	...     4     CRC32-C of the (compressed) payload
//
// Decode verifies magic, version, structural bounds and the checksum
// before touching the payload; corrupted or truncated input yields an
// error, never a partial window.
package snapshot

import (
	"errors"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/corrstat/compress"
	"github.com/arloliu/corrstat/corr"
	"github.com/arloliu/corrstat/endian"
	"github.com/arloliu/corrstat/format"
	"github.com/arloliu/corrstat/internal/pool"
)

const (
	headerSize  = 24
	trailerSize = 4 // CRC32-C of the payload

	flagRunning = 0x1
	flagR2      = 0x2
	flagE2      = 0x4
)

var magic = [4]byte{'C', 'W', 'S', 'N'}

var (
	// ErrTooShort is returned when the input cannot hold a header and trailer.
	ErrTooShort = errors.New("snapshot: input shorter than header")
	// ErrBadMagic is returned when the input does not start with the snapshot magic.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrChecksum is returned when the payload checksum does not match.
	ErrChecksum = errors.New("snapshot: payload checksum mismatch")
)

// castagnoli is the CRC32-C table shared by encode and decode.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Encode serializes the engine's window. The default is an
// uncompressed payload; pass WithCompression to trade encode cycles
// for a smaller image.
func Encode(c *corr.Correlation, opts ...Option) ([]byte, error) {
	if c == nil {
		return nil, errors.New("snapshot: nil correlation engine")
	}

	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	st := c.State()
	engine := endian.GetLittleEndianEngine()

	raw := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(raw)
	for _, x := range st.Xs {
		raw.B = engine.AppendUint64(raw.B, math.Float64bits(x))
	}
	for _, y := range st.Ys {
		raw.B = engine.AppendUint64(raw.B, math.Float64bits(y))
	}

	payload, err := codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("snapshot: payload compression failed: %w", err)
	}

	out := make([]byte, 0, headerSize+len(payload)+trailerSize)
	out = append(out, magic[:]...)
	out = append(out, format.SnapshotVersion, byte(cfg.Compression), flagBits(st), 0)
	out = engine.AppendUint32(out, uint32(st.Capacity))
	out = engine.AppendUint32(out, uint32(st.Count))
	out = engine.AppendUint32(out, uint32(st.Cursor))
	out = engine.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	out = engine.AppendUint32(out, crc32.Checksum(payload, castagnoli))

	return out, nil
}

// Decode reconstructs a correlation engine from a snapshot image. The
// returned engine is stale; call Calculate before reading coefficients.
func Decode(data []byte) (*corr.Correlation, error) {
	if len(data) < headerSize+trailerSize {
		return nil, ErrTooShort
	}
	if [4]byte(data[:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := data[4]; v != format.SnapshotVersion {
		return nil, fmt.Errorf("snapshot: unsupported version %d", v)
	}

	compression := format.CompressionType(data[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	flags := data[6]

	engine := endian.GetLittleEndianEngine()
	capacity := int(engine.Uint32(data[8:12]))
	count := int(engine.Uint32(data[12:16]))
	cursor := int(engine.Uint32(data[16:20]))
	payloadLen := int(engine.Uint32(data[20:24]))

	if len(data) != headerSize+payloadLen+trailerSize {
		return nil, fmt.Errorf("snapshot: length %d does not match declared payload %d", len(data), payloadLen)
	}

	payload := data[headerSize : headerSize+payloadLen]
	if crc32.Checksum(payload, castagnoli) != engine.Uint32(data[headerSize+payloadLen:]) {
		return nil, ErrChecksum
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: payload decompression failed: %w", err)
	}
	if len(raw) != count*16 {
		return nil, fmt.Errorf("snapshot: payload holds %d bytes, want %d for %d samples", len(raw), count*16, count)
	}

	xs, releaseXs := pool.GetFloat64Slice(count)
	defer releaseXs()
	ys, releaseYs := pool.GetFloat64Slice(count)
	defer releaseYs()
	for i := 0; i < count; i++ {
		xs[i] = math.Float64frombits(engine.Uint64(raw[i*8:]))
		ys[i] = math.Float64frombits(engine.Uint64(raw[(count+i)*8:]))
	}

	// FromState copies the columns, so the pooled scratch can be released.
	return corr.FromState(corr.State{
		Capacity: capacity,
		Count:    count,
		Cursor:   cursor,
		Running:  flags&flagRunning != 0,
		R2:       flags&flagR2 != 0,
		E2:       flags&flagE2 != 0,
		Xs:       xs,
		Ys:       ys,
	})
}

func flagBits(st corr.State) byte {
	var b byte
	if st.Running {
		b |= flagRunning
	}
	if st.R2 {
		b |= flagR2
	}
	if st.E2 {
		b |= flagE2
	}

	return b
}
