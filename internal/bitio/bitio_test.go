package bitio

import (
	"bytes"
	"testing"
)

func bitsOf(bs ...int) []int { return bs }

var roundTripVectors = []struct {
	name string
	bits []int
	want []byte
}{
	{
		name: "single byte",
		bits: bitsOf(1, 0, 1, 1, 0, 0, 1, 0),
		want: []byte{0xB2},
	},
	{
		name: "partial trailing byte",
		bits: bitsOf(1, 1, 1, 0, 0),
		want: []byte{0xE0},
	},
	{
		name: "two bytes",
		bits: bitsOf(0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0),
		want: []byte{0x01, 0xFE},
	},
	{
		name: "empty",
		bits: bitsOf(),
		want: []byte{},
	},
}

func TestWriter(t *testing.T) {
	for _, v := range roundTripVectors {
		t.Run(v.name, func(t *testing.T) {
			buf := make([]byte, len(v.want)+1)
			w := NewWriter(buf)
			for _, b := range v.bits {
				w.WriteBit(b)
			}
			n := w.Finish()
			if n != len(v.want) {
				t.Fatalf("Finish() = %d, want %d", n, len(v.want))
			}
			if !bytes.Equal(buf[:n], v.want) {
				t.Fatalf("got % X, want % X", buf[:n], v.want)
			}
		})
	}
}

func TestReader(t *testing.T) {
	for _, v := range roundTripVectors {
		if len(v.bits) == 0 {
			continue
		}
		t.Run(v.name, func(t *testing.T) {
			r := NewReader(v.want)
			got := make([]int, 0, len(v.bits))
			for range v.bits {
				got = append(got, r.ReadBit())
			}
			for i, b := range v.bits {
				if got[i] != b {
					t.Fatalf("bit %d: got %d, want %d", i, got[i], b)
				}
			}
		})
	}
}

func TestWriterOutOfSpace(t *testing.T) {
	defer func() {
		r := recover()
		if r != ErrOutOfSpace {
			t.Fatalf("recover() = %v, want %v", r, ErrOutOfSpace)
		}
	}()
	w := NewWriter(make([]byte, 0))
	for i := 0; i < 8; i++ {
		w.WriteBit(1)
	}
}

func TestReaderExceededBuffer(t *testing.T) {
	defer func() {
		r := recover()
		if r != ErrExceededBuffer {
			t.Fatalf("recover() = %v, want %v", r, ErrExceededBuffer)
		}
	}()
	r := NewReader([]byte{0xFF})
	for i := 0; i < 9; i++ {
		r.ReadBit()
	}
}
