package kompressor

import (
	"bytes"
	"testing"

	"github.com/markomilutin/kompressor/internal/testutil"
)

func smallParams() Params {
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

func roundTripOnce(t *testing.T, p Params, input []byte) []byte {
	t.Helper()
	w, err := NewWriter(p)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	r, err := NewReader(p)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	dst := make([]byte, p.SectionSize*2+64)
	n, err := w.CompressSection(input, dst, true)
	if err != nil {
		t.Fatalf("CompressSection: %v", err)
	}

	out := make([]byte, p.SectionSize+1)
	m, err := r.DecompressSection(dst[:n], out)
	if err != nil {
		t.Fatalf("DecompressSection: %v", err)
	}
	return out[:m]
}

func TestEndToEndRandomHexLines(t *testing.T) {
	p := smallParams()
	rng := testutil.NewRand(42)

	for trial := 0; trial < 25; trial++ {
		n := rng.Intn(p.SectionSize)
		input := rng.Bytes(n)
		got := roundTripOnce(t, p, input)
		if !bytes.Equal(got, input) {
			t.Fatalf("trial %d (n=%d): round trip mismatch", trial, n)
		}
	}
}

func TestEndToEndSampleCorpus(t *testing.T) {
	p := smallParams()
	data := testutil.MustLoadFile("testdata/sample.txt", -1)
	got := roundTripOnce(t, p, data)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch on sample corpus")
	}
}

func TestEndToEndSingleByte(t *testing.T) {
	p := smallParams()
	got := roundTripOnce(t, p, []byte{0x7F})
	if !bytes.Equal(got, []byte{0x7F}) {
		t.Fatalf("single-byte round trip mismatch: %v", got)
	}
}

func TestEndToEndAllBytesEqual(t *testing.T) {
	p := smallParams()
	input := bytes.Repeat([]byte{0x55}, 500)
	got := roundTripOnce(t, p, input)
	if !bytes.Equal(got, input) {
		t.Fatalf("uniform-input round trip mismatch")
	}
}

func TestEndToEndAllBytesDistinct(t *testing.T) {
	p := smallParams()
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}
	got := roundTripOnce(t, p, input)
	if !bytes.Equal(got, input) {
		t.Fatalf("distinct-bytes round trip mismatch")
	}
}

func TestEndToEndSectionSizeBoundary(t *testing.T) {
	p := smallParams()
	w, err := NewWriter(p)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	exact := bytes.Repeat([]byte{0x10}, p.SectionSize)
	dst := make([]byte, p.SectionSize*2+64)
	if _, err := w.CompressSection(exact, dst, true); err != nil {
		t.Fatalf("CompressSection at exact section size: %v", err)
	}

	tooBig := bytes.Repeat([]byte{0x10}, p.SectionSize+1)
	if _, err := w.CompressSection(tooBig, dst, true); err != ErrSectionTooLarge {
		t.Fatalf("CompressSection over section size: err = %v, want %v", err, ErrSectionTooLarge)
	}
}

func TestMultiBlockContinuation(t *testing.T) {
	p := smallParams()
	rng := testutil.NewRand(99)

	const numBlocks = 5
	blocks := make([][]byte, numBlocks)
	for i := range blocks {
		blocks[i] = rng.Bytes(rng.Intn(p.SectionSize))
	}

	w, err := NewWriter(p)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	r, err := NewReader(p)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	var compressed [][]byte
	for i, blk := range blocks {
		last := i == numBlocks-1
		dst := make([]byte, p.SectionSize*2+64)
		n, err := w.CompressSection(blk, dst, last)
		if err != nil {
			t.Fatalf("block %d: CompressSection: %v", i, err)
		}
		compressed = append(compressed, dst[:n])
	}

	var decoded []byte
	for i, c := range compressed {
		out := make([]byte, p.SectionSize+1)
		n, err := r.DecompressSection(c, out)
		if err != nil {
			t.Fatalf("block %d: DecompressSection: %v", i, err)
		}
		decoded = append(decoded, out[:n]...)
	}

	var want []byte
	for _, blk := range blocks {
		want = append(want, blk...)
	}
	if !bytes.Equal(decoded, want) {
		t.Fatalf("multi-block round trip mismatch")
	}
}

func TestWriterResetStartsFreshRun(t *testing.T) {
	p := smallParams()
	w, err := NewWriter(p)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	dst := make([]byte, p.SectionSize*2+64)
	if _, err := w.CompressSection([]byte("first block"), dst, false); err != nil {
		t.Fatalf("CompressSection: %v", err)
	}
	w.Reset()
	// After Reset, statistics are fresh; this section alone must still
	// round trip correctly as a self-contained last block.
	r, err := NewReader(p)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	n, err := w.CompressSection([]byte("second run"), dst, true)
	if err != nil {
		t.Fatalf("CompressSection after Reset: %v", err)
	}
	out := make([]byte, p.SectionSize+1)
	m, err := r.DecompressSection(dst[:n], out)
	if err != nil {
		t.Fatalf("DecompressSection after Reset: %v", err)
	}
	if string(out[:m]) != "second run" {
		t.Fatalf("got %q, want %q", out[:m], "second run")
	}
}
