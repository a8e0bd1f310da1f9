package kompressor

// rleGenericEncode collapses runs of any repeating symbol into the
// literal followed by extended codes from the M-symbol block starting at
// B. Code B+k stands for k+1 additional copies of the preceding literal.
// An overlong run is split across multiple max-run codes by repeatedly
// subtracting maxDuplicateCount = M-1, the boundary formulation mandated
// to resolve the source's off-by-one ambiguity between encoder and
// decoder (see the generic-RLE design note).
//
// If M <= 1 the stage is disabled and data is returned unchanged (a
// fresh copy, since callers may reuse data as scratch).
func rleGenericEncode(data []int, B, M int) []int {
	if M <= 1 {
		out := make([]int, len(data))
		copy(out, data)
		return out
	}
	if len(data) == 0 {
		return []int{}
	}

	maxDup := M - 1
	out := make([]int, 0, len(data))
	prev := data[0]
	dup := 0
	flush := func() {
		out = append(out, prev)
		for dup > maxDup {
			out = append(out, B+maxDup-1)
			dup -= maxDup
		}
		if dup >= 1 {
			out = append(out, B+dup-1)
		}
		dup = 0
	}
	for i := 1; i < len(data); i++ {
		x := data[i]
		if x == prev {
			dup++
			continue
		}
		flush()
		prev = x
	}
	flush()
	return out
}

// rleGenericDecode expands the extended codes produced by
// rleGenericEncode back into literal runs. A literal is a symbol in
// [0,255] or an extended code of an earlier RLE pass (above the
// termination symbol and below B). The first symbol must be a literal
// (ErrInvalidFirstSymbol otherwise); thereafter a symbol in [B, B+M-1]
// repeats the previous literal, and any symbol that is neither is
// ErrSymbolOutOfRange.
func rleGenericDecode(data []int, B, M int) ([]int, error) {
	if M <= 1 {
		out := make([]int, len(data))
		copy(out, data)
		return out, nil
	}
	if len(data) == 0 {
		return []int{}, nil
	}

	isLiteral := func(s int) bool {
		return (s >= 0 && s <= 255) || (s > terminationSymbol && s < B)
	}
	first := data[0]
	if !isLiteral(first) {
		return nil, ErrInvalidFirstSymbol
	}
	out := make([]int, 0, len(data))
	out = append(out, first)
	prev := first
	maxExt := B + M - 1
	for i := 1; i < len(data); i++ {
		s := data[i]
		switch {
		case isLiteral(s):
			out = append(out, s)
			prev = s
		case s >= B && s <= maxExt:
			count := s - B + 1
			for j := 0; j < count; j++ {
				out = append(out, prev)
			}
		default:
			return nil, ErrSymbolOutOfRange
		}
	}
	return out, nil
}
