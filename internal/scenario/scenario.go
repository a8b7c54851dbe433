// Package scenario reads sequences of algorithm invocations from YAML,
// validates them, and runs them through the iterlat algorithms.
//
// A scenario file looks like:
//
//	name: basic
//	steps:
//	  - op: copy
//	    source: [9, 8, 7]
//	    source_kind: list
//	    target: [0, 0, 0, 0]
//	  - op: upper-bound
//	    source: [1, 3, 3, 5, 7]
//	    value: 3
//
// Preconditions the algorithms leave unchecked (sorted input, capability of
// the source kind) are checked here, before any algorithm runs.
package scenario

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Op names an operation a step can run.
type Op string

// Known operations.
const (
	OpCopy       Op = "copy"
	OpFill       Op = "fill"
	OpMax        Op = "max"
	OpReverse    Op = "reverse"
	OpUpperBound Op = "upper-bound"
	OpDistance   Op = "distance"
)

// Kind selects the position representation a step reads its source through.
type Kind string

// Source kinds. The zero Kind means KindArray.
const (
	KindArray   Kind = "array"
	KindList    Kind = "list"
	KindCounter Kind = "counter"
)

// MaxCounterSpan bounds hi-lo of a counter source. Steps materialize the
// counted values, so the span is limited like any other input.
const MaxCounterSpan = 1 << 20

// Step is one invocation.
type Step struct {
	Op         Op    `yaml:"op"`
	Source     []int `yaml:"source,omitempty"`
	SourceKind Kind  `yaml:"source_kind,omitempty"`
	Target     []int `yaml:"target,omitempty"`
	Value      *int  `yaml:"value,omitempty"`

	// Lo and Hi bound a counter source, [Lo, Hi).
	Lo int `yaml:"lo,omitempty"`
	Hi int `yaml:"hi,omitempty"`

	// Elementwise disables specialized bodies for this step.
	Elementwise bool `yaml:"elementwise,omitempty"`
}

// Scenario is a named list of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Result is the outcome of one step. Values is the sequence the step
// produced or inspected; Index is the offset of the returned position.
type Result struct {
	Op     Op     `yaml:"op"`
	Impl   string `yaml:"impl,omitempty"`
	Values []int  `yaml:"values,flow"`
	Index  int    `yaml:"index"`
}

// Kind returns the effective source kind of st.
func (st Step) Kind() Kind {
	if st.SourceKind == "" {
		return KindArray
	}

	return st.SourceKind
}

// Validate reports the first problem with st, wrapped around one of the
// package's sentinel errors.
func (st Step) Validate() error {
	kind := st.Kind()
	switch kind {
	case KindArray, KindList, KindCounter:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, st.SourceKind)
	}

	switch st.Op {
	case OpCopy:
		if st.Target == nil {
			return fmt.Errorf("%w: copy needs target", ErrMissingInput)
		}
		return st.requireSource()

	case OpFill:
		if st.Target == nil {
			return fmt.Errorf("%w: fill needs target", ErrMissingInput)
		}
		if st.Value == nil {
			return fmt.Errorf("%w: fill needs value", ErrMissingInput)
		}
		return nil

	case OpMax, OpDistance:
		return st.requireSource()

	case OpReverse:
		if kind != KindArray {
			return fmt.Errorf("%w: reverse needs bidirectional positions, got %s", ErrUnsupportedKind, kind)
		}
		return st.requireSource()

	case OpUpperBound:
		if kind != KindArray {
			return fmt.Errorf("%w: upper-bound needs random-access positions, got %s", ErrUnsupportedKind, kind)
		}
		if err := st.requireSource(); err != nil {
			return err
		}
		if st.Value == nil {
			return fmt.Errorf("%w: upper-bound needs value", ErrMissingInput)
		}
		if !slices.IsSorted(st.Source) {
			return fmt.Errorf("%w: %v", ErrUnsorted, st.Source)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
}

func (st Step) requireSource() error {
	if st.Kind() == KindCounter {
		// the unsigned difference is exact whenever Hi > Lo
		if st.Hi > st.Lo && uint64(st.Hi)-uint64(st.Lo) > MaxCounterSpan {
			return fmt.Errorf("%w: [%d, %d) exceeds %d", ErrRangeTooLarge, st.Lo, st.Hi, MaxCounterSpan)
		}
		return nil
	}
	if st.Source == nil {
		return fmt.Errorf("%w: %s needs source", ErrMissingInput, st.Op)
	}

	return nil
}

// Validate checks every step and reports the first failure with its index.
func (s *Scenario) Validate() error {
	for i, st := range s.Steps {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	return Parse(data)
}
