// Package kompressor implements a lossless byte-stream compressor and
// decompressor built from three composed stages: run-length collapsing of
// repeated symbols (two symbol-targeted passes plus one generic pass), a
// Burrows-Wheeler transform to cluster repeated bytes, and an adaptive
// arithmetic coder for entropy coding. Input is processed in bounded
// "sections"; Writer and Reader must be constructed with identical
// Params, and a run of sections may share adaptive statistics across
// calls via the lastBlock argument (see Writer.CompressSection).
package kompressor
