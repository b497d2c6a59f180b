package cli

import "fmt"

// structuralFlags are the letters OutputTree checks per printed tree: score,
// cliques/separators, tree, compact tree, junction-tree count, rooted
// count, adjacency matrix, dot file. They carry no boolean state of their
// own; Options.Raw is scanned for them again at output time.
const structuralFlags = "skjrtcmd"

// Options collects every flag letter accepted after a leading "-":
// boolean options extracted once at parse time, plus the raw flag string
// so output formatting can re-scan it per tree, exactly as the original
// output_flags buffer was reused for both purposes.
type Options struct {
	Raw string

	Verbose           bool
	Headers           bool
	EdgeEstimates     bool
	NaiveSampling     bool
	OutputSampleTimes bool
}

// DefaultOptions matches the original's hard-coded default flag string.
func DefaultOptions() Options {
	opts, err := ParseFlags("ksthv")
	if err != nil {
		panic(err)
	}
	return opts
}

// ParseFlags parses a concatenated flag string (the part of argv[1] after
// its leading "-"). Flags with recognized meaning set the corresponding
// Options field; the structural output flags fall through unrecognized by
// this loop but remain legal since they are re-checked at output time.
func ParseFlags(s string) (Options, error) {
	if len(s) > 16 {
		return Options{}, fmt.Errorf("%w: too many input flags", ErrUsage)
	}

	opts := Options{Raw: s}
	for _, f := range s {
		switch f {
		case 'v':
			opts.Verbose = true
		case 'h':
			opts.Headers = true
		case 'e':
			opts.EdgeEstimates = true
		case 'n':
			opts.NaiveSampling = true
		case 'T':
			opts.OutputSampleTimes = true
		default:
			if !containsRune(structuralFlags, f) {
				return Options{}, fmt.Errorf("%w: unknown flag: %c", ErrUsage, f)
			}
		}
	}
	return opts, nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// Usage returns the program's usage text, formatted around the invoked
// command name.
func Usage(cmd string) string {
	return fmt.Sprintf(`Usage: %s [-flags] <input file> [<maximum width>] [<action [arg ...]>]

An action is one of: max, sample, tree, file, enum (default is max).
 max                    find the maximum-a-posteriori graph
 sample [<n> [<seed>]]  sample n junction trees with given RNG seed
 tree <tree string>     parse the given tree in the compact form (-c)
 file <tree file>       parse each tree in file in the compact form (-c)
 enum                   enumerate all decomposable graphs, get edge probabilities

Flags control what is printed for each resulting graph/tree:
 s:  score
 k:  cliques and separators
 t:  tree representation
 c:  compact tree representation (readable by junctor)
 j:  number of junction trees
 r:  number of rooted junction trees (RPTs)
 m:  adjacency matrix
 d:  .dot file

Additional flags:
 h:  print a header line before each output
 v:  verbose, print information on computation progress
 e:  in sampling, print estimates of edge probabilities
 n:  use naive sampling (instead of adaptive)

The default flags are -ksthv

Examples:

%s bridges.score
Find a maximum-a-posteriori graph for bridges.score.

%s bridges.score 2 max
Find a maximum-a-posteriori graph of maximum width 2.

%s -the bridges.score sample 10
Sample and print 10 junction trees and estimate edge probabilities.

%s -s bridges.score tree 3{22}{513{1792{2304{2056{40}}{2176}}{320}}}
Print the score of the input tree.
`, cmd, cmd, cmd, cmd, cmd)
}
