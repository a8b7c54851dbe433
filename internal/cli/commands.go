package cli

import (
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/iterlat/concept"
	"github.com/katalvlaran/iterlat/internal/logging"
	"github.com/katalvlaran/iterlat/internal/scenario"
	"github.com/katalvlaran/iterlat/position"
)

func newCopyCmd() *cobra.Command {
	var (
		list        bool
		elementwise bool
		dst         []int
	)

	cmd := &cobra.Command{
		Use:   "copy --dst <ints> [ints...]",
		Short: "Copy integers into a destination array",
		Long: `Copy reads the arguments through array positions (or list positions with
--list) and writes them into the --dst array until either side runs out.
The printed index is the destination position after the last write.`,
		Example: `  # Block transfer between two arrays
  iterlat copy --dst 0,0,0,0 1 2 3

  # Element loop from a linked list
  iterlat copy --list --dst 0,0,0,0,0,0,0 9 8 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseInts(args)
			if err != nil {
				return err
			}
			return runStep(cmd, scenario.Step{
				Op:          scenario.OpCopy,
				Source:      src,
				SourceKind:  sourceKind(list),
				Target:      dst,
				Elementwise: elementwise,
			})
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Read the source through list positions")
	cmd.Flags().BoolVar(&elementwise, "elementwise", false, "Force the element loop")
	cmd.Flags().IntSliceVar(&dst, "dst", nil, "Destination contents, comma separated")

	return cmd
}

func newFillCmd() *cobra.Command {
	var (
		value int
		n     int
	)

	cmd := &cobra.Command{
		Use:     "fill --value <v> --len <n>",
		Short:   "Fill an array of n elements with a value",
		Args:    cobra.NoArgs,
		Example: `  iterlat fill --value 7 --len 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := scenario.Step{Op: scenario.OpFill, Target: make([]int, max(n, 0))}
			if cmd.Flags().Changed("value") {
				st.Value = &value
			}
			return runStep(cmd, st)
		},
	}

	cmd.Flags().IntVar(&value, "value", 0, "Value to write")
	cmd.Flags().IntVar(&n, "len", 0, "Number of elements")

	return cmd
}

func newMaxCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "max [ints...]",
		Short: "Find the position of the first maximum",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseInts(args)
			if err != nil {
				return err
			}
			return runStep(cmd, scenario.Step{Op: scenario.OpMax, Source: src, SourceKind: sourceKind(list)})
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Read the source through list positions")

	return cmd
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [ints...]",
		Short: "Reverse integers in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseInts(args)
			if err != nil {
				return err
			}
			return runStep(cmd, scenario.Step{Op: scenario.OpReverse, Source: src})
		},
	}
}

func newUpperBoundCmd() *cobra.Command {
	var x int

	cmd := &cobra.Command{
		Use:     "upper-bound --x <v> [sorted ints...]",
		Short:   "Find the first element greater than x in a sorted array",
		Example: `  iterlat upper-bound --x 3 1 3 3 5 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseInts(args)
			if err != nil {
				return err
			}
			st := scenario.Step{Op: scenario.OpUpperBound, Source: src}
			if cmd.Flags().Changed("x") {
				st.Value = &x
			}
			return runStep(cmd, st)
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "Value to bound")

	return cmd
}

func newDistanceCmd() *cobra.Command {
	var (
		list        bool
		elementwise bool
	)

	cmd := &cobra.Command{
		Use:   "distance [ints...]",
		Short: "Count the elements of a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseInts(args)
			if err != nil {
				return err
			}
			return runStep(cmd, scenario.Step{
				Op:          scenario.OpDistance,
				Source:      src,
				SourceKind:  sourceKind(list),
				Elementwise: elementwise,
			})
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Read the source through list positions")
	cmd.Flags().BoolVar(&elementwise, "elementwise", false, "Always walk the range")

	return cmd
}

// capsRow describes one built-in position kind.
type capsRow struct {
	Kind     string `yaml:"kind"`
	Type     string `yaml:"type"`
	Caps     string `yaml:"caps"`
	Category string `yaml:"category"`
	Element  string `yaml:"element"`
}

func describe(kind scenario.Kind, t reflect.Type) capsRow {
	c := concept.CapsOfType(t)
	row := capsRow{
		Kind:     string(kind),
		Type:     t.String(),
		Caps:     c.String(),
		Category: c.Category().String(),
		Element:  "none",
	}
	if elem, ok := concept.ElemOf(t); ok {
		row.Element = elem.String()
	}

	return row
}

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Show the capabilities of the built-in position kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := []capsRow{
				describe(scenario.KindArray, reflect.TypeFor[position.Array[int]]()),
				describe(scenario.KindList, reflect.TypeFor[position.Link[int]]()),
				describe(scenario.KindCounter, reflect.TypeFor[position.Counter[int]]()),
			}
			return writeYAML(cmd.OutOrStdout(), rows)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.run")
			logger.Info().Str("path", args[0]).Msg("Loading scenario")

			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			results, err := scenario.NewRunner().Run(s)
			if err != nil {
				return err
			}
			log.Debug().Int("results", len(results)).Msg("Scenario finished")

			return writeYAML(cmd.OutOrStdout(), results)
		},
	}
}
