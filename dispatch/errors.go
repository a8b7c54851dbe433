// SPDX-License-Identifier: MIT

package dispatch

import "errors"

var (
	// ErrEmptyTable is returned by New when no implementation is given.
	ErrEmptyTable = errors.New("dispatch: no implementations registered")

	// ErrArity indicates requirement vectors (or Select arguments) whose
	// length differs from the table's arity.
	ErrArity = errors.New("dispatch: arity mismatch")

	// ErrDuplicate indicates a key or name registered twice.
	ErrDuplicate = errors.New("dispatch: duplicate implementation")

	// ErrAmbiguous indicates two implementations neither of whose
	// requirements strictly subsumes the other's.
	ErrAmbiguous = errors.New("dispatch: ambiguous implementations")

	// ErrNoMatch indicates that no registered implementation accepts the
	// given capabilities.
	ErrNoMatch = errors.New("dispatch: no eligible implementation")
)
