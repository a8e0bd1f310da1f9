// Package arcoder implements the finite-precision adaptive arithmetic
// coder: a shared Fenwick-tree frequency model plus matching Encoder and
// Decoder state machines operating over a fixed vocabulary of V symbols.
// No symbol carries special meaning to this package (in practice the
// caller uses symbol 256 as its termination symbol) — the caller decides
// which symbol, if any, stops decoding.
package arcoder

// Error is a string-constant error type for this package's failure modes.
type Error string

func (e Error) Error() string { return "arcoder: " + string(e) }

const (
	// ErrInvalidWordSize is panicked at construction when w is outside [3,16].
	ErrInvalidWordSize = Error("invalid word size")
	// ErrCorruptStream is panicked by the decoder when the cumulative-count
	// lookup walks past the end of the vocabulary.
	ErrCorruptStream = Error("corrupt stream")
)

const (
	minWordSize = 3
	maxWordSize = 16
)

// model is the adaptive frequency table shared by Encoder and Decoder. It
// maintains per-symbol counts in a Fenwick (binary-indexed) tree for
// O(log V) cumulative-sum queries and point updates, per the spec's own
// "obvious upgrade" suggestion over a naive O(V) scan, alongside a raw
// counts slice for the O(1) direct counts[i] lookups encode/decode need and
// for O(V) reconstruction on rescale.
type model struct {
	v        int
	counts   []uint32 // counts[i] = current frequency of symbol i
	tree     []uint64 // 1-indexed Fenwick tree, tree[0] unused
	total    uint64
	maxBytes uint64 // rescale trigger: 2^(w-2)
	highBit  int    // largest power of two <= v, precomputed for findByCum
}

func newModel(v int, w int) *model {
	m := &model{
		v:        v,
		counts:   make([]uint32, v),
		tree:     make([]uint64, v+1),
		maxBytes: uint64(1) << uint(w-2),
	}
	hb := 1
	for hb*2 <= v {
		hb *= 2
	}
	m.highBit = hb
	for i := 0; i < v; i++ {
		m.counts[i] = 1
		m.treeAdd(i, 1)
	}
	m.total = uint64(v)
	return m
}

func (m *model) reset() {
	for i := 0; i < m.v; i++ {
		m.tree[i+1] = 0
	}
	for i := 0; i < m.v; i++ {
		m.counts[i] = 1
		m.treeAdd(i, 1)
	}
	m.total = uint64(m.v)
}

func (m *model) treeAdd(i int, delta int64) {
	for idx := i + 1; idx <= m.v; idx += idx & (-idx) {
		m.tree[idx] = uint64(int64(m.tree[idx]) + delta)
	}
}

// cum returns the inclusive cumulative count sum(counts[0..i]).
func (m *model) cum(i int) uint64 {
	var sum uint64
	for idx := i + 1; idx > 0; idx -= idx & (-idx) {
		sum += m.tree[idx]
	}
	return sum
}

// countAt returns the raw frequency of symbol i.
func (m *model) countAt(i int) uint64 {
	return uint64(m.counts[i])
}

// increment bumps symbol i's frequency by one and rescales if the total
// has crossed the configured threshold.
func (m *model) increment(i int) {
	m.counts[i]++
	m.treeAdd(i, 1)
	m.total++
	if m.total >= m.maxBytes {
		m.rescale()
	}
}

// rescale halves every count (flooring, minimum 1) and rebuilds the tree.
func (m *model) rescale() {
	var total uint64
	for i := 0; i < m.v; i++ {
		c := m.counts[i] / 2
		if c < 1 {
			c = 1
		}
		m.counts[i] = c
		total += uint64(c)
	}
	for i := range m.tree {
		m.tree[i] = 0
	}
	for i := 0; i < m.v; i++ {
		m.treeAdd(i, int64(m.counts[i]))
	}
	m.total = total
}

// findByCum returns the smallest symbol s such that cum(s) > k, or v if no
// such symbol exists (the caller must treat that as a corrupt stream).
func (m *model) findByCum(k uint64) int {
	pos := 0
	remaining := k
	for pw := m.highBit; pw > 0; pw >>= 1 {
		next := pos + pw
		if next <= m.v && m.tree[next] <= remaining {
			pos = next
			remaining -= m.tree[next]
		}
	}
	return pos
}

func checkWordSize(w int) {
	if w < minWordSize || w > maxWordSize {
		panic(ErrInvalidWordSize)
	}
}
