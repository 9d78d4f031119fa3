package compress

// ZstdCompressor trades speed for the best compression ratio of the
// built-in codecs.
//
// Worth it when snapshots are fanned out to many consumers or windows
// run into the thousands of samples; for small windows prefer S2 or
// None.
//
// Two implementations exist behind build tags: a pure-Go one
// (klauspost/compress/zstd, the default) and a cgo one (valyala/gozstd)
// for builds that can afford the cgo dependency.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
