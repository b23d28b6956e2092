package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		unauthorizedNameErr = Field("name", ErrUnauthorized, "a")
		humanNameErr        = Field("name", ErrHuman, "b")
		emptyGenderErr      = Field("gender", ErrEmpty, "gender is required")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   unauthorizedNameErr,
			Field: "name",
			Want:  []error{unauthorizedNameErr},
		},
		"two error found by the name": {
			Err: Append(
				unauthorizedNameErr,
				humanNameErr,
			),
			Field: "name",
			Want: []error{
				unauthorizedNameErr,
				humanNameErr,
			},
		},
		"wrapped field error is found": {
			Err:   Wrap(emptyGenderErr, "outer"),
			Field: "gender",
			Want:  []error{emptyGenderErr},
		},
		"no match": {
			Err:   Append(unauthorizedNameErr, emptyGenderErr),
			Field: "age",
			Want:  nil,
		},
		"nil error": {
			Err:   nil,
			Field: "name",
			Want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				t.Fatalf("unexpected result\nwant %v\n got %v", tc.Want, got)
			}
		})
	}
}

func TestAppendFieldIgnoresNil(t *testing.T) {
	var errs error
	errs = AppendField(errs, "Name", nil)
	errs = AppendField(errs, "Age", ErrInput)
	if !ErrInput.Is(errs) {
		t.Fatalf("want input error, got %v", errs)
	}
	if len(FieldErrors(errs, "Name")) != 0 {
		t.Fatal("nil field error must not be recorded")
	}
}
