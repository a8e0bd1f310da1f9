package arcoder

import "github.com/markomilutin/kompressor/internal/bitio"

// Decoder mirrors Encoder's tag-interval state machine, consuming bits
// from a bitio.Reader and reconstructing the original symbol sequence.
type Decoder struct {
	w    uint
	mask uint64
	half uint64

	low, high, tag uint64

	model *model
	br    *bitio.Reader
}

// NewDecoder constructs a Decoder over a vocabulary of v symbols using
// w-bit precision, reading from buf. It immediately reads the first w
// bits of buf into the initial tag, per the coder's initialization
// contract. It panics ErrInvalidWordSize if w is outside [3,16].
func NewDecoder(v, w int, buf []byte) *Decoder {
	checkWordSize(w)
	d := &Decoder{
		w:     uint(w),
		br:    bitio.NewReader(buf),
		model: newModel(v, w),
	}
	d.mask = (uint64(1) << d.w) - 1
	d.half = uint64(1) << (d.w - 1)
	d.low = 0
	d.high = d.mask
	d.tag = d.readInitialTag()
	return d
}

// Reset rebinds the decoder to buf, restores the initial frequency model,
// and re-reads the initial tag from the new buffer.
func (d *Decoder) Reset(buf []byte) {
	d.br.Reset(buf)
	d.model.reset()
	d.low = 0
	d.high = d.mask
	d.tag = d.readInitialTag()
}

// Rebind starts a new independently-terminated section on the same
// decoder instance: the tag interval and input buffer are reset and the
// initial tag is re-read exactly as Reset does, but the frequency model's
// statistics are left untouched — the decode-side half of the multi-block
// contract (see Encoder.Rebind).
func (d *Decoder) Rebind(buf []byte) {
	d.br.Reset(buf)
	d.low = 0
	d.high = d.mask
	d.tag = d.readInitialTag()
}

func (d *Decoder) readInitialTag() uint64 {
	var tag uint64
	for i := uint(0); i < d.w; i++ {
		tag = (tag << 1) | uint64(d.br.ReadBit())
	}
	return tag
}

// DecodeSymbol decodes and returns the next symbol, updating the
// frequency model and renormalizing exactly as the encoder did. It panics
// ErrCorruptStream if the cumulative-count lookup walks past the end of
// the vocabulary.
func (d *Decoder) DecodeSymbol() int {
	rng := d.high - d.low
	total := d.model.total
	k := ((d.tag-d.low+1)*total - 1) / (rng + 1)
	s := d.model.findByCum(k)
	if s >= d.model.v {
		panic(ErrCorruptStream)
	}

	cumHi := d.model.cum(s)
	cumLo := cumHi - d.model.countAt(s)
	newLow := d.low + (rng+1)*cumLo/total
	newHigh := d.low + (rng+1)*cumHi/total - 1
	d.low, d.high = newLow, newHigh

	d.model.increment(s)
	d.renormalize()
	return s
}

// BytesConsumed returns how many bytes of the current input buffer have
// been touched so far, per bitio.Reader.BytesConsumed.
func (d *Decoder) BytesConsumed() int {
	return d.br.BytesConsumed()
}

func (d *Decoder) renormalize() {
	for {
		if (d.low>>(d.w-1))&1 == (d.high>>(d.w-1))&1 {
			d.low = (d.low << 1) & d.mask
			d.high = ((d.high << 1) | 1) & d.mask
			d.tag = ((d.tag << 1) | uint64(d.br.ReadBit())) & d.mask
			continue
		}
		lowSecond := (d.low >> (d.w - 2)) & 1
		highSecond := (d.high >> (d.w - 2)) & 1
		if highSecond == 0 && lowSecond == 1 {
			d.low = ((d.low << 1) & d.mask) ^ d.half
			d.high = (((d.high << 1) | 1) & d.mask) ^ d.half
			d.tag = (((d.tag << 1) | uint64(d.br.ReadBit())) & d.mask) ^ d.half
			continue
		}
		break
	}
}
