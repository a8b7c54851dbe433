// Package cli builds the iterlat command tree.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/iterlat/internal/logging"
	"github.com/katalvlaran/iterlat/internal/scenario"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "iterlat",
		Short: "Run sequence algorithms over capability-typed positions",
		Long: `iterlat runs copy, fill, max, reverse, upper-bound and distance over
array, list and counter positions, and reports which implementation the
dispatcher selected for each call.

Results are printed as YAML. Use -v to see dispatch decisions on stderr.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newFillCmd())
	rootCmd.AddCommand(newMaxCmd())
	rootCmd.AddCommand(newReverseCmd())
	rootCmd.AddCommand(newUpperBoundCmd())
	rootCmd.AddCommand(newDistanceCmd())
	rootCmd.AddCommand(newCapsCmd())
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}

// runStep executes one step and prints its result.
func runStep(cmd *cobra.Command, st scenario.Step) error {
	res, err := scenario.NewRunner().RunStep(st)
	if err != nil {
		return err
	}

	return writeYAML(cmd.OutOrStdout(), res)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return enc.Close()
}

// parseInts converts positional arguments to integers.
func parseInts(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		vals = append(vals, v)
	}

	return vals, nil
}

func sourceKind(list bool) scenario.Kind {
	if list {
		return scenario.KindList
	}

	return scenario.KindArray
}
