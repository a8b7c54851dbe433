package scenario

import "errors"

var (
	// ErrUnknownOp indicates a step whose op is not one of the known operations.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrUnknownKind indicates a source_kind other than array, list or counter.
	ErrUnknownKind = errors.New("scenario: unknown source kind")

	// ErrUnsupportedKind indicates a source kind that lacks the capability the
	// op needs, such as reversing a list.
	ErrUnsupportedKind = errors.New("scenario: source kind not supported by op")

	// ErrMissingInput indicates a required field that is absent.
	ErrMissingInput = errors.New("scenario: missing input")

	// ErrRangeTooLarge indicates a counter source spanning more than
	// MaxCounterSpan integers.
	ErrRangeTooLarge = errors.New("scenario: counter range too large")

	// ErrUnsorted indicates an upper-bound source that is not sorted.
	ErrUnsorted = errors.New("scenario: source is not sorted")
)
