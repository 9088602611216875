package errors

import (
	"strings"
	"testing"
)

func TestSafeExecute_ConvertsPanic(t *testing.T) {
	err := SafeExecute("matrix inversion", func() error {
		panic("zero pivot")
	})

	if err == nil {
		t.Fatal("expected an error from the recovered panic")
	}
	if !strings.Contains(err.Error(), "matrix inversion") {
		t.Errorf("message missing operation: %v", err)
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected PanicError, got %T", err)
	}
	if panicErr.StackTrace == "" {
		t.Error("PanicError is missing a stack trace")
	}
}

func TestSafeExecute_PassesThroughError(t *testing.T) {
	want := New("solve failed")
	err := SafeExecute("fit", func() error { return want })
	if !Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestSafeExecute_NoError(t *testing.T) {
	if err := SafeExecute("fit", func() error { return nil }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRecover_WrapsExistingError(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "predict")
		err = New("dimension mismatch")
		panic("index out of range")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "dimension mismatch") {
		t.Errorf("original error lost: %v", err)
	}
	if !strings.Contains(err.Error(), "index out of range") {
		t.Errorf("panic detail lost: %v", err)
	}
}
