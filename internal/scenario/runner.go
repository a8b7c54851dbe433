package scenario

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/iterlat/algorithms"
	"github.com/katalvlaran/iterlat/internal/logging"
	"github.com/katalvlaran/iterlat/position"
)

// Runner executes validated steps.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner returns a Runner logging under the "scenario" component.
func NewRunner() *Runner {
	return &Runner{logger: logging.GetLogger("scenario")}
}

// Run validates s and executes its steps in order. It stops at the first
// invalid step; steps never fail once validated.
func (r *Runner) Run(s *Scenario) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	r.logger.Info().Str("scenario", s.Name).Int("steps", len(s.Steps)).Msg("Running scenario")

	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		res, err := r.RunStep(st)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// RunStep validates and executes one step.
func (r *Runner) RunStep(st Step) (Result, error) {
	if err := st.Validate(); err != nil {
		return Result{}, err
	}
	done := logging.LogOperationStart(r.logger, string(st.Op))
	defer done()

	res := Result{Op: st.Op}
	opts := []algorithms.Option{
		algorithms.WithOnDispatch(func(op, impl string) {
			if Op(op) == st.Op {
				res.Impl = impl
			}
			r.logger.Info().Str("op", op).Str("impl", impl).Msg("Dispatched")
		}),
	}
	if st.Elementwise {
		opts = append(opts, algorithms.WithElementwise())
	}

	switch st.Op {
	case OpCopy:
		res.Values, res.Index = r.copy(st, opts)
	case OpFill:
		res.Values = slices.Clone(st.Target)
		first, last := position.Range(res.Values)
		algorithms.Fill(first, last, *st.Value)
		res.Index = len(res.Values)
	case OpMax:
		res.Values, res.Index = r.max(st, opts)
	case OpReverse:
		res.Values = slices.Clone(st.Source)
		first, last := position.Range(res.Values)
		algorithms.Reverse(first, last)
		res.Index = len(res.Values)
	case OpUpperBound:
		res.Values = slices.Clone(st.Source)
		first, last := position.Range(res.Values)
		res.Index = algorithms.UpperBound(first, last, *st.Value).Index()
	case OpDistance:
		res.Values, res.Index = r.distance(st, opts)
	}

	r.logger.Debug().
		Str("op", string(st.Op)).
		Ints("values", res.Values).
		Int("index", res.Index).
		Msg("Step finished")

	return res, nil
}

func (r *Runner) copy(st Step, opts []algorithms.Option) ([]int, int) {
	dst := slices.Clone(st.Target)
	out, outEnd := position.Range(dst)

	var res position.Array[int]
	switch st.Kind() {
	case KindList:
		l := position.NewList(st.Source...)
		res = algorithms.Copy(l.Begin(), l.End(), out, outEnd, opts...)
	case KindCounter:
		in, inEnd := position.Count(st.Lo, st.Hi)
		res = algorithms.Copy(in, inEnd, out, outEnd, opts...)
	default:
		in, inEnd := position.Range(slices.Clone(st.Source))
		res = algorithms.Copy(in, inEnd, out, outEnd, opts...)
	}

	return dst, res.Index()
}

// max reports the offset of the first maximum, or the length for an empty
// source. The offset is measured with Distance so every kind is handled alike.
func (r *Runner) max(st Step, opts []algorithms.Option) ([]int, int) {
	switch st.Kind() {
	case KindList:
		l := position.NewList(st.Source...)
		m := algorithms.MaxElement(l.Begin(), l.End())
		return l.Values(), algorithms.Distance(l.Begin(), m, opts...)
	case KindCounter:
		first, last := position.Count(st.Lo, st.Hi)
		m := algorithms.MaxElement(first, last)
		return counted(first, last), algorithms.Distance(first, m, opts...)
	default:
		vals := slices.Clone(st.Source)
		first, last := position.Range(vals)
		m := algorithms.MaxElement(first, last)
		return vals, algorithms.Distance(first, m, opts...)
	}
}

func (r *Runner) distance(st Step, opts []algorithms.Option) ([]int, int) {
	switch st.Kind() {
	case KindList:
		l := position.NewList(st.Source...)
		return l.Values(), algorithms.Distance(l.Begin(), l.End(), opts...)
	case KindCounter:
		first, last := position.Count(st.Lo, st.Hi)
		return counted(first, last), algorithms.Distance(first, last, opts...)
	default:
		vals := slices.Clone(st.Source)
		first, last := position.Range(vals)
		return vals, algorithms.Distance(first, last, opts...)
	}
}

// counted materializes a counter range.
func counted(first, last position.Counter[int]) []int {
	vals := make([]int, last.Read()-first.Read())
	out, outEnd := position.Range(vals)
	algorithms.Copy(first, last, out, outEnd)

	return vals
}
