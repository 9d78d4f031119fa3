// Package compress provides compression and decompression codecs for
// correlation-window snapshot payloads.
//
// A snapshot payload is two columns of raw float64 bits (the X and Y
// samples of a window), typically a few hundred bytes to a few dozen
// kilobytes. Compression is optional and applied at the payload level
// after the columns are serialized; the snapshot header records which
// codec was used so the decoder can pick the matching one.
//
// # Supported Algorithms
//
//   - None: no compression, payload passes through untouched
//   - Zstd: best ratio, useful when snapshots are fanned out widely
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Raw float64 columns compress poorly compared to delta-encoded integer
// data, so None is a perfectly reasonable default for small windows;
// the codecs pay off once windows reach a few thousand samples or the
// data itself is repetitive.
//
// # Architecture
//
// Three interfaces split the concerns:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec maps a format.CompressionType to a ready-to-use built-in
// Codec. All built-in codecs are safe for concurrent use.
package compress
