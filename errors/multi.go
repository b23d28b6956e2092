package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil values are given, nil is returned.
// If only one non nil error is given, it is returned unchanged.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		// Flatten so that Is and FieldErrors do not have to go
		// deeper than one level.
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr represents a group of errors that were collected together, for
// example during a message validation.
type multiErr []error

func (e multiErr) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(e), strings.Join(msgs, "\n\t"))
}

// Unpack implements unpacker interface.
func (e multiErr) Unpack() []error {
	return []error(e)
}

// unpacker is implemented by errors that are a collection of other errors.
type unpacker interface {
	Unpack() []error
}
