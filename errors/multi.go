package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened before being
// combined, so that the result is never a nested collection.
func Append(errs ...error) error {
	var combined multiError
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if u, ok := err.(unpacker); ok {
			combined = append(combined, u.Unpack()...)
		} else {
			combined = append(combined, err)
		}
	}

	switch len(combined) {
	case 0:
		return nil
	case 1:
		return combined[0]
	default:
		return combined
	}
}

// multiError represents a group of errors. It is helpful when a single
// operation can fail for many independent reasons, for example when
// validating a model field by field.
type multiError []error

var _ unpacker = (multiError)(nil)

func (e multiError) Error() string {
	if len(e) == 1 {
		return fmt.Sprintf("1 error occurred:\n\t* %s\n", e[0])
	}

	points := make([]string, len(e))
	for i, err := range e {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n",
		len(e), strings.Join(points, "\n\t"))
}

// Unpack implements the unpacker interface.
func (e multiError) Unpack() []error {
	return e
}

// unpacker is implemented by errors that are a collection of other errors.
type unpacker interface {
	Unpack() []error
}
