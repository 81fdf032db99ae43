package cli

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/go-log/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsort/mergesort"
	"github.com/katalvlaran/lvsort/seqgen"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	Random   int    // generate this many values instead of reading them
	Shape    string // seqgen shape for --random
	Seed     int64  // seqgen seed for --random
	Parallel int    // mergesort.WithParallel threshold, 0 = sequential
}

// SortReport is the payload of the sort command.
type SortReport struct {
	Input  []int `json:"input"`
	Output []int `json:"output"`
	Merges int64 `json:"merges"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{}

	cmd := &cobra.Command{
		Use:   "sort [int...]",
		Short: "Merge sort integers",
		Long: `Merge sort integers given as arguments, read from stdin
(whitespace separated) when no arguments are given, or generated with --random.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Random, "random", 0, "sort N generated values instead of input")
	cmd.Flags().StringVar(&opts.Shape, "shape", string(seqgen.ShapeRandom), "shape of generated values")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for generated values")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "fork halves of ranges at least this long (0 = sequential)")

	return cmd
}

func runSort(rootOpts *RootOptions, opts *SortOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	in, err := sortInput(opts, args, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(WrapExitError(ExitCommandError, "read input", err))
	}

	var merges atomic.Int64
	out, err := mergesort.SortWith(in, cmp.Compare[int],
		mergesort.WithContext(cmd.Context()),
		mergesort.WithParallel(opts.Parallel),
		mergesort.WithOnMerge(func(int, int, int) { merges.Add(1) }),
	)
	if err != nil {
		return formatter.Fail(WrapExitError(ExitCommandError, "sort", err))
	}
	log.Logf("[sort] n=%d parallel=%d merges=%d", len(in), opts.Parallel, merges.Load())

	report := SortReport{Input: in, Output: out, Merges: merges.Load()}
	return formatter.Write("ok", report, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}

// sortInput resolves the integers to sort: generated, from args, or from r.
func sortInput(opts *SortOptions, args []string, r io.Reader) ([]int, error) {
	if opts.Random != 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("--random cannot be combined with arguments")
		}
		return seqgen.New(opts.Seed).Shape(seqgen.Shape(opts.Shape), opts.Random)
	}
	if len(args) > 0 {
		return parseInts(args)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return parseInts(words)
}

func parseInts(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = n
	}

	return out, nil
}
