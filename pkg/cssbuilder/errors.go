package cssbuilder

import (
	"errors"
	"fmt"
)

// DuplicateError indicates that a fragment kind limited to a single
// occurrence (element, id, or pseudo-element) was set a second time on the
// same selector.
type DuplicateError struct {
	Fragment string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s should not occur more than once inside the selector", e.Fragment)
}

// OrderError indicates that a fragment was added after a fragment of a
// later kind was already present. Fragment is the kind that was attempted,
// Present is the later kind already set.
type OrderError struct {
	Fragment string
	Present  string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("cannot add %s after %s: selector parts should be arranged in the order element, id, class, attribute, pseudo-class, pseudo-element", e.Fragment, e.Present)
}

func IsDuplicateError(err error) bool {
	var e *DuplicateError
	return errors.As(err, &e)
}

func IsOrderError(err error) bool {
	var e *OrderError
	return errors.As(err, &e)
}
