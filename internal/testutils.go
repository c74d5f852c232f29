// Package internal holds assertion helpers shared by the test suites.
package internal

import (
	"fmt"
	"reflect"
	"testing"
)

// FailureMessage reports a got/want mismatch
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()
	t.Errorf("\ngot:  %s\nwant: %s", toString(got), toString(want))
}

func toString(obj interface{}) string {
	return fmt.Sprintf("%+v", obj)
}

// AssertNoError fails the test immediately on an unexpected error
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
}

// AssertErrored fails the test when no error occurred
func AssertErrored(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, but got nil")
	}
}

// AssertEqual checks that two comparable values are equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if got != want {
		FailureMessage(t, got, want)
	}
}

// AssertDeepEqual checks for deep equality
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// AssertTrue checks that the value is true
func AssertTrue(t *testing.T, got bool) {
	t.Helper()
	if !got {
		FailureMessage(t, got, true)
	}
}
