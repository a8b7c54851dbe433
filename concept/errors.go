// SPDX-License-Identifier: MIT

package concept

import "errors"

// ErrLawViolated is returned by the law checkers when a position type has the
// right method shapes but breaks the semantics its capability promises.
var ErrLawViolated = errors.New("concept: capability law violated")
