// Command dmscore computes BDeu subset scores from a categorical data
// file and writes them out as a DMST score file for cmd/junctor to
// consume. It supports only the unified subset_scores/colex_order output
// mode of the original dmscore (see DESIGN.md).
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jwkangas/junctor/bdeu"
	"github.com/jwkangas/junctor/scorefile"
)

func usage(cmd string) string {
	return fmt.Sprintf(`Syntax: %s [-o <output file>] <datafile> <equivalent sample size> [<max clique size>]

Reads categorical sample data (one whitespace-separated integer record per
line) and writes its BDeu subset scores as a DMST score file, in
subset_scores/colex_order form.
`, cmd)
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := argv[0]
	argv = argv[1:]

	outFilename := "-"
	if len(argv) >= 2 && argv[0] == "-o" {
		outFilename = argv[1]
		argv = argv[2:]
	}

	if len(argv) < 2 || len(argv) > 3 {
		fmt.Fprint(stderr, usage(cmd))
		return nil
	}

	dataFilename := argv[0]
	ess, err := strconv.ParseFloat(argv[1], 64)
	if err != nil || ess <= 0 {
		return fmt.Errorf("invalid equivalent sample size %q", argv[1])
	}

	dataFile, err := os.Open(dataFilename)
	if err != nil {
		return fmt.Errorf("could not open file %q for reading: %w", dataFilename, err)
	}
	defer dataFile.Close()

	data, err := bdeu.ReadData(dataFile)
	if err != nil {
		return fmt.Errorf("while reading data file %q: %w", dataFilename, err)
	}

	maxSetSize := data.N()
	if len(argv) == 3 {
		v, err := strconv.Atoi(argv[2])
		if err != nil || v < 1 || v > data.N() {
			return fmt.Errorf("invalid max clique size %q", argv[2])
		}
		maxSetSize = v
	}

	scores, err := bdeu.ComputeSubsetScores(data, bdeu.NewScorer(ess), maxSetSize)
	if err != nil {
		return err
	}

	out := stdout
	if outFilename != "-" {
		f, err := os.Create(outFilename)
		if err != nil {
			return fmt.Errorf("could not open file %q for writing: %w", outFilename, err)
		}
		defer f.Close()
		out = f
	}

	return scorefile.Write(out, scores, data.N(), maxSetSize)
}
