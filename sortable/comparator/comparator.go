// Package comparator contains the per-column comparison strategies used to
// order the rows of a hosting table. Comparators are immutable values; the
// sort direction is applied by the caller, never by the comparator itself.
package comparator

import (
	"fmt"

	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/tableaux-project/tablesort"
	"github.com/tableaux-project/tablesort/widget"
)

// Comparator is the common interface for ordering two rows of a hosting
// table by a single column.
type Comparator interface {
	// Compare returns a negative value if a orders before b, a positive
	// value if a orders after b, and zero if both are considered equal.
	// Comparators always order ascending - callers apply direction as a
	// final negation, so flipping direction never requires re-parsing.
	Compare(a, b widget.Item) (int, error)
}

// MalformedCellError indicates that cell values could not be parsed by a
// comparator running under PolicyFailFast.
type MalformedCellError struct {
	Column int
	ValueA string
	ValueB string
	cause  error
}

func (e MalformedCellError) Error() string {
	return fmt.Sprintf("cannot compare malformed cell values %q, %q in column %d: %v", e.ValueA, e.ValueB, e.Column, e.cause)
}

func (e MalformedCellError) Unwrap() error {
	return e.cause
}

// Common pins a comparator to a single column of the hosting table, and
// carries the policy deciding how malformed cell values are handled. The
// zero policy is PolicyFailSoft.
type Common struct {
	Column int
	Policy tablesort.Policy
}

// malformed resolves a failed parse of the given raw cell values according
// to the policy.
func (common Common) malformed(valueA, valueB string, cause error) (int, error) {
	if common.Policy == tablesort.PolicyFailFast {
		return 0, &MalformedCellError{
			Column: common.Column,
			ValueA: valueA,
			ValueB: valueB,
			cause:  cause,
		}
	}

	log.WithFields(
		"column", common.Column,
		"valueA", valueA,
		"valueB", valueB,
		"cause", cause,
	).Error("Cannot compare malformed cell values - treating as equal")

	return 0, nil
}
