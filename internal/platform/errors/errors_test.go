package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeUnavailable, "fetch failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeUnavailable {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	e4 := Wrapf(src, ErrorCodeInvalidArgument, "nope %s", "here")
	// Error() includes message + ": " + orig
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeInvalidArgument {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField (copy-on-write) and WithOp
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "date")
	e7 := WithOp(e6, "calculate")
	if fe, ok := As(e6); !ok || fe.Field() != "date" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "calculate" {
		t.Fatalf("WithOp failed")
	}
	// original unchanged
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}

	w := WireFrom(WithField(New(ErrorCodeValidation, "must be present"), "days"))
	if w.Code != ErrorCodeValidation || w.Field != "days" || w.Message != "must be present" {
		t.Fatalf("WireFrom = %+v", w)
	}

	foreign := WireFrom(stderrs.New("boom"))
	if foreign.Code != ErrorCodeUnknown || foreign.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", foreign)
	}
}

func TestRoot(t *testing.T) {
	src := stderrs.New("root")
	wrapped := Wrap(Wrap(src, ErrorCodeUnavailable, "inner"), ErrorCodeUnknown, "outer")
	if Root(wrapped) != src {
		t.Fatalf("Root did not reach the deepest cause")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("missing %s", "x"), ErrorCodeNotFound},
		{InvalidArgf("bad"), ErrorCodeInvalidArgument},
		{Validationf("bad"), ErrorCodeValidation},
		{JSONErrf("bad"), ErrorCodeJSON},
		{PanicErrf("bad"), ErrorCodePanic},
		{Unavailablef("bad"), ErrorCodeUnavailable},
		{Internalf("bad"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("CodeOf(%v) = %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Unavailablef("upstream down")) {
		t.Fatal("unavailable should be retryable")
	}
	if Retryable(Validationf("bad input")) {
		t.Fatal("validation is not retryable")
	}
	if Retryable(nil) {
		t.Fatal("nil is not retryable")
	}
}
