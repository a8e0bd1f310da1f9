// Command kompress is a thin CLI front-end over the kompressor package,
// chunking a file into bounded sections and compressing or decompressing
// them back-to-back with no added length framing, the multi-block
// contract's own byte-aligned termination carrying the boundary between
// one block and the next (see package kompressor's design notes).
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/dsnet/golib/strconv"
	"github.com/spf13/cobra"

	"github.com/markomilutin/kompressor"
)

var flags struct {
	sectionSize   string
	wordSize      int
	special1      uint8
	special1Max   int
	special2      uint8
	special2Max   int
	genericMax    int
}

func paramsFromFlags() (kompressor.Params, error) {
	n, err := strconv.ParsePrefix(flags.sectionSize)
	if err != nil {
		return kompressor.Params{}, fmt.Errorf("invalid --section-size %q: %w", flags.sectionSize, err)
	}
	return kompressor.Params{
		SectionSize:          int(n),
		SpecialSymbol1:       flags.special1,
		SpecialSymbol1MaxRun: flags.special1Max,
		SpecialSymbol2:       flags.special2,
		SpecialSymbol2MaxRun: flags.special2Max,
		GenericMaxRun:        flags.genericMax,
		WordSize:             flags.wordSize,
	}, nil
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.sectionSize, "section-size", "2Ki", "bytes per section (accepts SI/IEC suffixes, e.g. 4Ki)")
	cmd.Flags().IntVar(&flags.wordSize, "word-size", 16, "arithmetic coder precision in bits (3-16)")
	cmd.Flags().Uint8Var(&flags.special1, "special1", 0x00, "byte targeted by the first RLE pass")
	cmd.Flags().IntVar(&flags.special1Max, "special1-max-run", 5, "max run length for the first RLE pass (0 disables)")
	cmd.Flags().Uint8Var(&flags.special2, "special2", 0x00, "byte targeted by the second RLE pass")
	cmd.Flags().IntVar(&flags.special2Max, "special2-max-run", 0, "max run length for the second RLE pass (0 disables)")
	cmd.Flags().IntVar(&flags.genericMax, "generic-max-run", 15, "max run length for the generic RLE pass (<=1 disables)")
}

func runCompress(cmd *cobra.Command, args []string) error {
	p, err := paramsFromFlags()
	if err != nil {
		return err
	}
	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}

	w, err := kompressor.NewWriter(p)
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	scratch := make([]byte, p.SectionSize*2+64)
	off := 0
	for {
		end := off + p.SectionSize
		if end > len(data) {
			end = len(data)
		}
		last := end >= len(data)
		n, err := w.CompressSection(data[off:end], scratch, last)
		if err != nil {
			return fmt.Errorf("compressing section at offset %d: %w", off, err)
		}
		if _, err := out.Write(scratch[:n]); err != nil {
			return err
		}
		log.Printf("compressed section [%d,%d) -> %d bytes", off, end, n)
		off = end
		if last {
			break
		}
	}
	return nil
}

func runDecompress(cmd *cobra.Command, args []string) error {
	p, err := paramsFromFlags()
	if err != nil {
		return err
	}
	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}

	r, err := kompressor.NewReader(p)
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	scratch := make([]byte, p.SectionSize+1)
	off := 0
	for off < len(data) {
		remaining := data[off:]
		n, err := r.DecompressSection(remaining, scratch)
		if err != nil {
			return fmt.Errorf("decompressing section at offset %d: %w", off, err)
		}
		if _, err := out.Write(scratch[:n]); err != nil {
			return err
		}
		consumed := r.BytesConsumed()
		if consumed <= 0 {
			return fmt.Errorf("decoder made no progress at offset %d", off)
		}
		off += consumed
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "kompress",
		Short: "Compress or decompress a file with the kompressor pipeline",
	}

	compressCmd := &cobra.Command{
		Use:   "compress <infile> <outfile>",
		Short: "Compress a file section by section",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompress,
	}
	addParamFlags(compressCmd)

	decompressCmd := &cobra.Command{
		Use:   "decompress <infile> <outfile>",
		Short: "Decompress a file produced by compress",
		Args:  cobra.ExactArgs(2),
		RunE:  runDecompress,
	}
	addParamFlags(decompressCmd)

	root.AddCommand(compressCmd, decompressCmd)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
