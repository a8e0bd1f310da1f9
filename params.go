package kompressor

// Params bundles the construction parameters that a Writer and its
// companion Reader must agree on exactly. Mismatched parameters between
// encode and decode produce undefined (not merely incorrect) results; the
// wire format carries no self-describing header naming them.
type Params struct {
	// SectionSize bounds the number of raw input bytes per call, and thus
	// the size of every scratch buffer the pipeline allocates.
	SectionSize int

	// SpecialSymbol1/SpecialSymbol1MaxRun configure the first
	// symbol-targeted RLE pass, applied to the raw byte stream before the
	// BWT. A MaxRun of 0 or 1 disables this stage.
	SpecialSymbol1       byte
	SpecialSymbol1MaxRun int

	// SpecialSymbol2/SpecialSymbol2MaxRun configure the second
	// symbol-targeted RLE pass, applied after the BWT. A MaxRun of 0 or 1
	// disables this stage.
	SpecialSymbol2       byte
	SpecialSymbol2MaxRun int

	// GenericMaxRun configures the any-symbol RLE pass applied last,
	// before arithmetic coding. Values <= 1 disable the stage.
	GenericMaxRun int

	// WordSize is the arithmetic coder's tag-interval precision in bits,
	// 3..16 inclusive.
	WordSize int
}

// DefaultParams returns a reasonable starting configuration: a 2048-byte
// section, the first specific-RLE stage targeting the zero byte with a max
// run of 5 and the second disabled, a generic RLE cap of 15, and 16-bit
// coder precision — the parameter tuple used by the
// end-to-end scenario in the testable-properties set.
func DefaultParams() Params {
	return Params{
		SectionSize:          2048,
		SpecialSymbol1:       0x00,
		SpecialSymbol1MaxRun: 5,
		SpecialSymbol2:       0x00,
		SpecialSymbol2MaxRun: 0,
		GenericMaxRun:        15,
		WordSize:             16,
	}
}

// s1Max, s2Max, and genericMax clamp negative configuration values to 0 so
// that downstream base-offset arithmetic never underflows; negative values
// are treated the same as "disabled" rather than rejected, since only
// WordSize and SectionSize are given hard range contracts.
func (p Params) s1Max() int {
	if p.SpecialSymbol1MaxRun < 0 {
		return 0
	}
	return p.SpecialSymbol1MaxRun
}

func (p Params) s2Max() int {
	if p.SpecialSymbol2MaxRun < 0 {
		return 0
	}
	return p.SpecialSymbol2MaxRun
}

func (p Params) genericMax() int {
	if p.GenericMaxRun < 0 {
		return 0
	}
	return p.GenericMaxRun
}

// s1Base, s2Base, and genericBase are the first symbol values of each
// extended block in the shared vocabulary, per the layout fixed in the
// data model: base bytes, then the termination symbol, then the three
// extended blocks in order.
func (p Params) s1Base() int { return 257 }
func (p Params) s2Base() int { return 257 + p.s1Max() }
func (p Params) genericBase() int { return 257 + p.s1Max() + p.s2Max() }

// vocabSize returns V, the total number of symbols the arithmetic coder's
// frequency model must track, including the termination symbol.
func (p Params) vocabSize() int {
	return 257 + p.s1Max() + p.s2Max() + p.genericMax()
}

// terminationSymbol is always 256, the fixed sentinel that every
// vocabulary layout reserves immediately above the base byte range.
const terminationSymbol = 256

// bwtStoreBytes returns the number of little-endian bytes needed to
// represent any original-row index up to SectionSize-1, i.e.
// ceil(log256(SectionSize)), with a floor of 1.
func (p Params) bwtStoreBytes() int {
	n := p.SectionSize - 1
	if n < 0 {
		n = 0
	}
	bytes := 1
	for n >= 256 {
		n /= 256
		bytes++
	}
	return bytes
}

// Validate checks the construction-time invariants a Writer/Reader pair
// must satisfy. It does not check that SpecialSymbol1MaxRun/
// SpecialSymbol2MaxRun/GenericMaxRun are individually "0 or >= 2" /
// ">= 1" as the design's construction-parameter note expects as a
// convention, since values outside that convention degrade gracefully
// (treated as disabled) rather than being unsafe; only WordSize and
// SectionSize have hard range contracts enforced here.
func (p Params) Validate() error {
	if p.WordSize < minWordSizeConst || p.WordSize > maxWordSizeConst {
		return ErrInvalidWordSize
	}
	if p.SectionSize < 1 {
		return ErrInvalidSectionSize
	}
	return nil
}

const (
	minWordSizeConst = 3
	maxWordSizeConst = 16
)
