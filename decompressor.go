package kompressor

import "github.com/markomilutin/kompressor/internal/arcoder"

// Reader decompresses successive sections produced by a matching Writer,
// sharing adaptive frequency statistics across a run of blocks exactly as
// the Writer did. Parameters must match the encoder's exactly; there is
// no self-describing header to detect a mismatch, and doing so produces
// either an error from the table in the design or silently wrong output.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	p   Params
	dec *arcoder.Decoder
}

// NewReader constructs a Reader for the given parameters.
func NewReader(p Params) (*Reader, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Reader{p: p}, nil
}

// Reset discards all decoder state, including adaptive statistics.
func (r *Reader) Reset() {
	r.dec = nil
}

// BytesConsumed reports how many bytes of the src slice passed to the
// most recent DecompressSection call were actually touched. Callers
// chaining multiple blocks read from one concatenated byte stream with no
// length framing use this to find the start of the next block.
func (r *Reader) BytesConsumed() int {
	if r.dec == nil {
		return 0
	}
	return r.dec.BytesConsumed()
}

// DecompressSection decompresses one section from src into dst, returning
// the number of bytes written. src may hold trailing bytes belonging to a
// later section in the same run; only BytesConsumed() of it are this
// section's. Decoding needs no lastBlock flag of its own: the encoder's
// multi-block "don't-care" padding only affects where the byte stream
// becomes byte-aligned for the next block, never which symbols this block
// decodes to, since decoding always stops at the shared termination
// symbol regardless of what trailing bits follow it.
func (r *Reader) DecompressSection(src []byte, dst []byte) (n int, err error) {
	defer errRecover(&err)

	if r.dec == nil {
		r.dec = arcoder.NewDecoder(r.p.vocabSize(), r.p.WordSize, src)
	} else {
		r.dec.Rebind(src)
	}

	maxIntermediate := r.p.SectionSize + r.p.bwtStoreBytes()
	var symbols []int
	for {
		s := r.dec.DecodeSymbol()
		if s == terminationSymbol {
			break
		}
		if len(symbols) >= maxIntermediate {
			return 0, ErrOutputOverflow
		}
		symbols = append(symbols, s)
	}

	if r.p.genericMax() > 1 {
		symbols, err = rleGenericDecode(symbols, r.p.genericBase(), r.p.genericMax())
		if err != nil {
			return 0, err
		}
		if len(symbols) > maxIntermediate {
			return 0, ErrNotEnoughSpace
		}
	}

	if r.p.s2Max() > 1 {
		symbols, err = rleSpecificDecode(symbols, int(r.p.SpecialSymbol2), r.p.s2Base(), r.p.s2Max())
		if err != nil {
			return 0, err
		}
		if len(symbols) > maxIntermediate {
			return 0, ErrNotEnoughSpace
		}
	}

	symbols, err = bwtInverse(symbols, r.p.bwtStoreBytes(), r.p.vocabSize())
	if err != nil {
		return 0, err
	}

	if r.p.s1Max() > 1 {
		symbols, err = rleSpecificDecode(symbols, int(r.p.SpecialSymbol1), r.p.s1Base(), r.p.s1Max())
		if err != nil {
			return 0, err
		}
	}

	if len(symbols) > r.p.SectionSize {
		return 0, ErrSectionTooLarge
	}
	if len(symbols) > len(dst) {
		return 0, ErrNotEnoughSpace
	}
	for i, s := range symbols {
		if s < 0 || s > 255 {
			return 0, ErrInvalidSymbol
		}
		dst[i] = byte(s)
	}
	return len(symbols), nil
}
