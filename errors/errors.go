package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Class groups root errors by how a caller should react to them.
type Class uint8

const (
	// Validation errors are caused by the request parameters. The same
	// call with different parameters may succeed.
	Validation Class = iota + 1
	// Policy errors are caused by the current state or by the caller
	// identity. The request is well formed but it is not allowed now.
	Policy
	// Infrastructure errors are caused by a collaborator (storage, value
	// transfer) or by an invalid configuration.
	Infrastructure
)

func (c Class) String() string {
	switch c {
	case Validation:
		return "validation"
	case Policy:
		return "policy"
	case Infrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, Policy, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(3, Validation, "not found")

	// ErrMsg is returned whenever a message is invalid and cannot be
	// handled.
	ErrMsg = Register(4, Validation, "invalid message")

	// ErrModel is returned whenever a model is invalid and cannot be
	// persisted.
	ErrModel = Register(5, Validation, "invalid model")

	// ErrDuplicate is returned when there is a record already that has the same
	// unique key/index used
	ErrDuplicate = Register(6, Validation, "duplicate")

	// ErrHuman is returned when application reaches a code path which should not
	// ever be reached if the code was written as expected by the framework
	ErrHuman = Register(7, Infrastructure, "coding error")

	// ErrEmpty is returned when a value fails a not empty assertion
	ErrEmpty = Register(9, Validation, "value is empty")

	// ErrState is returned when an object is in invalid state
	ErrState = Register(10, Policy, "invalid state")

	// ErrType is returned whenever the type is not what was expected
	ErrType = Register(11, Infrastructure, "invalid type")

	// ErrAmount stands for invalid amount of whatever
	ErrAmount = Register(13, Validation, "invalid amount")

	// ErrInput stands for general input problems indication
	ErrInput = Register(14, Validation, "invalid input")

	// ErrOverflow s returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(16, Validation, "an operation cannot be completed due to value overflow")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(17, Infrastructure, "database")

	// ErrMetadata is returned when a model or a message carries invalid
	// metadata.
	ErrMetadata = Register(19, Validation, "invalid metadata")

	// ErrNullAddress is returned when a configuration value requires an
	// address and none was given.
	ErrNullAddress = Register(18, Infrastructure, "null address")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info
	ErrPanic = Register(111222, Infrastructure, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, class Class, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code:  code,
		class: class,
		desc:  description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	1: nil, // Error code 1 is restricted for errors not created by this package.
}

// Error represents a root error.
//
// Root errors are used to categorize issues. Each instance created during
// the runtime should wrap one of the declared root errors. This allows error
// tests and returning all errors to the client in a safe manner.
type Error struct {
	code  uint32
	class Class
	desc  string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the unique code of this root error.
func (e Error) Code() uint32 {
	return e.code
}

// Class returns the classification of this root error.
func (e Error) Class() Class {
	return e.class
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (e *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if e == nil {
		return isNilErr(err)
	}

	for {
		if err == e {
			return true
		}

		// If this is a collection of errors, this function must return
		// true if at least one from the group match.
		if u, ok := err.(unpacker); ok {
			for _, er := range u.Unpack() {
				if e.Is(er) {
					return true
				}
			}
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional funtionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Unwrap allows the standard library errors package to traverse the chain.
func (e *wrappedError) Unwrap() error {
	return e.parent
}

// Format prints the description followed by the parent, which includes the
// stack trace when formatted with %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// Root returns the registered root error that given error is wrapping or nil
// if the error does not originate from this package.
func Root(err error) *Error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		if u, ok := err.(unpacker); ok {
			// Fail fast: the first error of a group decides.
			if errs := u.Unpack(); len(errs) > 0 {
				err = errs[0]
				continue
			}
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}

// ClassOf returns the classification of given error. Errors not created by
// this package are considered an infrastructure failure.
func ClassOf(err error) Class {
	if err == nil {
		return 0
	}
	if root := Root(err); root != nil {
		return root.class
	}
	return Infrastructure
}

// IsValidation returns true if the error was caused by the request parameters.
func IsValidation(err error) bool {
	return err != nil && ClassOf(err) == Validation
}

// IsPolicy returns true if the request was rejected by the current state or
// the caller identity.
func IsPolicy(err error) bool {
	return err != nil && ClassOf(err) == Policy
}

// IsInfrastructure returns true if the failure was caused by a collaborator or
// an invalid configuration.
func IsInfrastructure(err error) bool {
	return err != nil && ClassOf(err) == Infrastructure
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
