package arcoder

import "github.com/markomilutin/kompressor/internal/bitio"

// Encoder is an adaptive finite-precision arithmetic encoder. It narrows a
// w-bit [low, high] tag interval per symbol, renormalizing through the
// classic E1/E2 (same top bit) and E3 (straddling middle) cases, and
// defers bit emission across E3 scalings via e3Pending exactly as
// described for the source's _rescale/_rescale2 split.
//
// Low-level failures (bit-writer exhaustion, an invalid word size) are
// reported by panicking a sentinel error; callers at the package boundary
// recover and convert the panic into a returned error.
type Encoder struct {
	w    uint
	mask uint64
	half uint64

	low, high uint64
	e3Pending int

	model *model
	bw    *bitio.Writer
}

// NewEncoder constructs an Encoder over a vocabulary of v symbols using
// w-bit tag-interval precision, writing into buf. It panics
// ErrInvalidWordSize if w is outside [3,16].
func NewEncoder(v, w int, buf []byte) *Encoder {
	checkWordSize(w)
	e := &Encoder{
		w:     uint(w),
		bw:    bitio.NewWriter(buf),
		model: newModel(v, w),
	}
	e.mask = (uint64(1) << e.w) - 1
	e.half = uint64(1) << (e.w - 1)
	e.low = 0
	e.high = e.mask
	return e
}

// Reset rebinds the encoder to buf and restores the initial tag interval
// and frequency model, exactly as a fresh NewEncoder would.
func (e *Encoder) Reset(buf []byte) {
	e.bw.Reset(buf)
	e.model.reset()
	e.low = 0
	e.high = e.mask
	e.e3Pending = 0
}

// Rebind starts a new independently-terminated section on the same
// encoder instance: the tag interval, E3 counter, and output buffer are
// reset exactly as Reset does, but the frequency model's statistics are
// left untouched. This is the basis of the multi-block contract, where a
// run of sections shares one adapting model across otherwise
// self-contained, byte-boundary-terminated blocks.
func (e *Encoder) Rebind(buf []byte) {
	e.bw.Reset(buf)
	e.low = 0
	e.high = e.mask
	e.e3Pending = 0
}

// EncodeSymbol narrows the tag interval for symbol s, updates its
// frequency, and renormalizes, emitting bits as needed.
func (e *Encoder) EncodeSymbol(s int) {
	e.narrow(s)
	e.model.increment(s)
	e.renormalize()
}

func (e *Encoder) narrow(s int) {
	rng := e.high - e.low
	total := e.model.total
	cumHi := e.model.cum(s)
	cumLo := cumHi - e.model.countAt(s)
	newLow := e.low + (rng+1)*cumLo/total
	newHigh := e.low + (rng+1)*cumHi/total - 1
	e.low, e.high = newLow, newHigh
}

func (e *Encoder) renormalize() {
	for {
		if (e.low>>(e.w-1))&1 == (e.high>>(e.w-1))&1 {
			bit := int((e.low >> (e.w - 1)) & 1)
			e.bw.WriteBit(bit)
			for e.e3Pending > 0 {
				e.bw.WriteBit(1 - bit)
				e.e3Pending--
			}
			e.low = (e.low << 1) & e.mask
			e.high = ((e.high << 1) | 1) & e.mask
			continue
		}
		lowSecond := (e.low >> (e.w - 2)) & 1
		highSecond := (e.high >> (e.w - 2)) & 1
		if highSecond == 0 && lowSecond == 1 {
			e.low = ((e.low << 1) & e.mask) ^ e.half
			e.high = (((e.high << 1) | 1) & e.mask) ^ e.half
			e.e3Pending++
			continue
		}
		break
	}
}

// Finish terminates the coded stream. When lastBlock is false, it first
// narrows the interval with an extra "don't-care" symbol (symbol 0),
// without incrementing its frequency, and renormalizes exactly as
// EncodeSymbol would — this is what actually shrinks the interval (and
// may itself emit bits) before the final flush below, rather than
// leaving low untouched. It then emits the w bits of the resulting low,
// flushing any pending E3 complements after each, and returns the total
// number of output bytes.
func (e *Encoder) Finish(lastBlock bool) int {
	if !lastBlock {
		e.narrow(0)
		e.renormalize()
	}
	for i := int(e.w) - 1; i >= 0; i-- {
		bit := int((e.low >> uint(i)) & 1)
		e.bw.WriteBit(bit)
		for e.e3Pending > 0 {
			e.bw.WriteBit(1 - bit)
			e.e3Pending--
		}
	}
	return e.bw.Finish()
}
