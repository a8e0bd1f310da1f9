package kompressor

import "github.com/markomilutin/kompressor/internal/arcoder"

// Writer compresses successive sections of raw bytes into independently
// terminated arithmetic-coded blocks, optionally sharing adaptive
// frequency statistics across a run of blocks (the multi-block contract).
//
// A Writer is not safe for concurrent use; it owns the encoder's mutable
// tag-interval and frequency state across calls.
type Writer struct {
	p   Params
	enc *arcoder.Encoder
}

// NewWriter constructs a Writer for the given parameters. It returns an
// error if p fails Validate.
func NewWriter(p Params) (*Writer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Writer{p: p}, nil
}

// Reset discards all encoder state, including adaptive statistics. The
// next CompressSection call starts a wholly fresh run of blocks.
func (w *Writer) Reset() {
	w.enc = nil
}

// CompressSection compresses input (length at most w.p.SectionSize) into
// dst, returning the number of bytes written. Set lastBlock to false when
// more sections will follow in the same run sharing adaptive statistics
// with this one (the multi-block contract); set it to true for the final
// section of a run, or for any single-shot, self-contained call.
func (w *Writer) CompressSection(input []byte, dst []byte, lastBlock bool) (n int, err error) {
	defer errRecover(&err)

	if len(input) > w.p.SectionSize {
		return 0, ErrSectionTooLarge
	}

	symbols := make([]int, len(input))
	for i, b := range input {
		symbols[i] = int(b)
	}

	if w.p.s1Max() > 1 {
		symbols = rleSpecificEncode(symbols, int(w.p.SpecialSymbol1), w.p.s1Base(), w.p.s1Max())
	}

	symbols = bwtForward(symbols, w.p.bwtStoreBytes())

	if w.p.s2Max() > 1 {
		symbols = rleSpecificEncode(symbols, int(w.p.SpecialSymbol2), w.p.s2Base(), w.p.s2Max())
	}

	if w.p.genericMax() > 1 {
		symbols = rleGenericEncode(symbols, w.p.genericBase(), w.p.genericMax())
	}

	symbols = append(symbols, terminationSymbol)

	if w.enc == nil {
		w.enc = arcoder.NewEncoder(w.p.vocabSize(), w.p.WordSize, dst)
	} else {
		w.enc.Rebind(dst)
	}
	for _, s := range symbols {
		w.enc.EncodeSymbol(s)
	}
	n = w.enc.Finish(lastBlock)
	return n, nil
}
