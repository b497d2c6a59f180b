package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jwkangas/junctor/dp"
	"github.com/jwkangas/junctor/enumerate"
	"github.com/jwkangas/junctor/junctiontree"
	"github.com/jwkangas/junctor/pairtable"
	"github.com/jwkangas/junctor/sample"
	"github.com/jwkangas/junctor/scorefile"
)

// treeSampler is the shape both sample.NaiveSampler and
// sample.AdaptiveSampler already satisfy.
type treeSampler interface {
	Sample() (*junctiontree.Node, error)
}

// Run parses argv (as os.Args, including the program name at index 0) and
// executes the requested action, writing results to stdout and verbose
// progress messages to stderr. It returns nil for a usage error printed
// to stdout (matching the original's "print usage, exit 0" behavior) and
// a non-nil error only for failures encountered after argument parsing.
func Run(argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty argv", ErrUsage)
	}
	cmd := argv[0]
	argv = argv[1:]

	if len(argv) == 0 {
		fmt.Fprint(stdout, Usage(cmd))
		return nil
	}

	opts := DefaultOptions()
	if strings.HasPrefix(argv[0], "-") {
		parsed, err := ParseFlags(argv[0][1:])
		if err != nil {
			fmt.Fprint(stdout, Usage(cmd))
			return nil
		}
		opts = parsed
		argv = argv[1:]
		if len(argv) == 0 {
			fmt.Fprint(stdout, Usage(cmd))
			return nil
		}
	}

	inputFile := argv[0]
	argv = argv[1:]

	verbosef := func(format string, args ...interface{}) {
		if opts.Verbose {
			fmt.Fprintf(stderr, format, args...)
		}
	}
	verbosef("Input score file: %s\n", inputFile)

	var requestedWidth int
	haveWidth := false
	if len(argv) > 0 {
		if w, err := strconv.Atoi(argv[0]); err == nil && w != 0 {
			requestedWidth = w
			haveWidth = true
			argv = argv[1:]
		}
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	scores, n, m, err := scorefile.Read(f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	verbosef("  Number of variables: %d\n", n)
	verbosef("  Scores up to set size: %d\n", m)

	width := m
	if haveWidth {
		width = requestedWidth
		if width > m {
			fmt.Fprintf(stdout, "Warning: Given maximum width was %d but the input only contains scores for sets up to size %d.\n", requestedWidth, m)
			width = m
		}
	}

	action := "max"
	var actionArgs []string
	if len(argv) > 0 {
		action = argv[0]
		actionArgs = argv[1:]
	}

	switch action {
	case "max":
		return runMax(stdout, n, width, scores, opts, verbosef)
	case "sample":
		return runSample(stdout, n, width, scores, opts, actionArgs, verbosef)
	case "tree":
		return runTree(stdout, n, scores, opts, actionArgs)
	case "file":
		return runTreeFile(stdout, n, scores, opts, actionArgs)
	case "enum":
		return runEnum(stdout, n, scores)
	default:
		fmt.Fprintln(stdout, "Error: Unknown action.")
		fmt.Fprint(stdout, Usage(cmd))
		return nil
	}
}

// announceTableAllocation prints the estimated memory requirement of one
// f/g/h table triple, then the same "f... g... h..." progress sequence
// the original prints around each table's allocation, before dp.New
// allocates all three at once.
func announceTableAllocation(n, width int, verbosef func(string, ...interface{})) {
	slots := float64(pairtable.Estimate(n, width))
	requiredMiB := slots * 3 * 8 / 1024 / 1024
	verbosef("Estimated memory requirement: ")
	if requiredMiB < 1000 {
		verbosef("%.2f M\n", requiredMiB)
	} else {
		verbosef("%.2f G\n", requiredMiB/1024)
	}
	verbosef("Allocating DP tables f... g... h...\n")
}

func runMax(stdout io.Writer, n, width int, scores *scorefile.Scores, opts Options, verbosef func(string, ...interface{})) error {
	announceTableAllocation(n, width, verbosef)
	engine := dp.New(n, width, dp.MaxPlus{}, scores, true)
	verbosef("\nComputing max tables...\n")
	root, err := engine.Backtrack()
	if err != nil {
		return err
	}
	verbosef("Optimum found. Backtracking...\n")
	return OutputTree(stdout, root, scores, opts, n)
}

// runSample mirrors sampling(argv): argv is [<n_samples> [<seed>]].
func runSample(stdout io.Writer, n, width int, scores *scorefile.Scores, opts Options, args []string, verbosef func(string, ...interface{})) error {
	nSamples := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: sample count %q", ErrParse, args[0])
		}
		nSamples = v
	}

	seed := time.Now().UnixNano()
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: RNG seed %q", ErrParse, args[1])
		}
		seed = int64(v)
	}
	rng := rand.New(rand.NewSource(seed))

	announceTableAllocation(n, width, verbosef)
	engine := dp.New(n, width, dp.LogSumExp{}, scores, false)
	verbosef("\nComputing sum tables...\n")

	var sampler treeSampler
	if opts.NaiveSampling {
		s, err := sample.NewNaiveSampler(engine, rng)
		if err != nil {
			return err
		}
		sampler = s
	} else {
		s, err := sample.NewAdaptiveSampler(engine, rng)
		if err != nil {
			return err
		}
		defer s.Close()
		sampler = s
	}

	var weightTotal float64
	edgeGraphs := make([][]int, n)
	edgeWeights := make([][]float64, n)
	for i := range edgeGraphs {
		edgeGraphs[i] = make([]int, n)
		edgeWeights[i] = make([]float64, n)
	}

	for i := 0; i < nSamples; i++ {
		tree, err := sampler.Sample()
		if err != nil {
			return err
		}
		if err := OutputTree(stdout, tree, scores, opts, n); err != nil {
			return err
		}

		if opts.EdgeEstimates {
			junctionTrees := tree.CountJunctionTrees()
			partitionTrees := junctionTrees * float64(tree.Nodes())
			weight := 1.0 / partitionTrees
			weightTotal += weight

			graph := tree.Graph(n)
			for a := 0; a < n-1; a++ {
				for b := a + 1; b < n; b++ {
					if graph.HasEdge(a, b) {
						edgeGraphs[a][b]++
						edgeWeights[a][b] += weight
					}
				}
			}
		}
	}

	if opts.EdgeEstimates {
		fmt.Fprintf(stdout, "total weight:  %f\n", weightTotal)
		fmt.Fprintln(stdout, " edge    graphs    weight         estimate")
		for a := 0; a < n-1; a++ {
			for b := a + 1; b < n; b++ {
				normalized := edgeWeights[a][b] / weightTotal
				fmt.Fprintf(stdout, "%2d-%2d  %8d   %-14.6f  %f\n", a, b, edgeGraphs[a][b], edgeWeights[a][b], normalized)
			}
		}
	}
	return nil
}

func runTree(stdout io.Writer, n int, scores *scorefile.Scores, opts Options, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing argument: a tree in the compact form", ErrUsage)
	}
	root, err := junctiontree.Deserialize(args[0])
	if err != nil {
		return fmt.Errorf("%w: the tree string is malformed: %v", ErrParse, err)
	}
	return OutputTree(stdout, root, scores, opts, n)
}

func runTreeFile(stdout io.Writer, n int, scores *scorefile.Scores, opts Options, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing argument: a file containing trees in the compact form", ErrUsage)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%w: could not read: %s", ErrIO, args[0])
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		root, err := junctiontree.Deserialize(line)
		if err != nil {
			fmt.Fprintln(stdout, "Error: The tree string is malformed.")
			continue
		}
		if err := OutputTree(stdout, root, scores, opts, n); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runEnum(stdout io.Writer, n int, scores *scorefile.Scores) error {
	fmt.Fprintln(stdout, "Enumerating all decomposable graphs...")
	result, err := enumerate.EnumerateChordal(n, scores)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCapacity, err)
	}
	fmt.Fprintf(stdout, "Networks:     %d\n", result.NumChordal)
	fmt.Fprintf(stdout, "Total score:  %f\n", result.TotalScore)
	fmt.Fprintln(stdout, "Edge probabilities:")
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			fmt.Fprintf(stdout, "%d-%d  %f\n", i, j, result.EdgeProb[i][j])
		}
	}
	return nil
}
