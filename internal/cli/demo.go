package cli

import (
	"fmt"
	"io"

	"github.com/go-log/log"
	"github.com/spf13/cobra"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	File string
}

// DemoReport is the payload of the demo command.
type DemoReport struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Failed    int              `json:"failed"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the merge sort scenarios",
		Long: `Run every scenario and print its input and result.

Without --file the built-in scenarios are used. A scenario whose result
differs from its "want" list, or whose error expectation is not met,
fails the command with exit code 1.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "scenario YAML file (default: built-in scenarios)")

	return cmd
}

func runDemo(rootOpts *RootOptions, opts *DemoOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	scenarios, err := LoadScenarioFile(opts.File)
	if err != nil {
		return formatter.Fail(WrapExitError(ExitCommandError, "load scenarios", err))
	}
	log.Logf("[demo] loaded %d scenario(s)", len(scenarios))

	report := DemoReport{Scenarios: make([]ScenarioResult, 0, len(scenarios))}
	for _, sc := range scenarios {
		res := sc.Run()
		log.Logf("[demo] %s: op=%s merges=%d ok=%t", res.Name, res.Op, res.Merges, res.OK)
		if !res.OK {
			report.Failed++
		}
		report.Scenarios = append(report.Scenarios, res)
	}

	status := "ok"
	if report.Failed > 0 {
		status = "error"
	}
	if err := formatter.Write(status, report, func(w io.Writer) error {
		return writeDemoText(w, scenarios, report)
	}); err != nil {
		return err
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", report.Failed, len(report.Scenarios)))
	}
	return nil
}

// writeDemoText prints one line per scenario and a summary line.
func writeDemoText(w io.Writer, scenarios []Scenario, report DemoReport) error {
	for i, res := range report.Scenarios {
		prefix := ""
		if !res.OK {
			prefix = "FAIL "
		}

		operands := fmt.Sprintf("%v", res.Input)
		if res.Op == OpMerge {
			operands = fmt.Sprintf("%v + %v", res.Left, res.Right)
		}

		result := fmt.Sprintf("%v", res.Output)
		if res.Error != "" {
			result = "error: " + res.Error
		}
		if !res.OK && scenarios[i].Want != nil {
			result += fmt.Sprintf(" (want %v)", scenarios[i].Want)
		}

		if _, err := fmt.Fprintf(w, "%s%s: %s -> %s\n", prefix, res.Name, operands, result); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d scenarios, %d failed\n", len(report.Scenarios), report.Failed)
	return err
}
