package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewAndError(t *testing.T) {
	err := New(CodeLoadError, "bad input")
	if err.Error() != "bad input" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if GetCode(err) != CodeLoadError {
		t.Errorf("unexpected code: %s", GetCode(err))
	}
}

func TestWrapPreservesInnerCode(t *testing.T) {
	inner := LoadError("no header row")
	wrapped := Wrap(inner, "reading upload")

	if GetCode(wrapped) != CodeLoadError {
		t.Errorf("expected inner code preserved, got %s", GetCode(wrapped))
	}
	if !stderrors.Is(wrapped, inner) {
		t.Error("wrapped error must unwrap to the inner error")
	}
	if wrapped.Error() != "reading upload: no header row" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk full"), "writing report")
	if GetCode(wrapped) != CodeInternalError {
		t.Errorf("plain errors wrap to INTERNAL_ERROR, got %s", GetCode(wrapped))
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil must return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf on nil must return nil")
	}
	if WithCode(CodeLoadError, nil) != nil {
		t.Error("WithCode on nil must return nil")
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeNetworkError, fmt.Errorf("connection refused"))
	if !IsCode(err, CodeNetworkError) {
		t.Errorf("expected NETWORK_ERROR, got %s", GetCode(err))
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", got)
	}
	if IsCode(fmt.Errorf("plain"), CodeLoadError) {
		t.Error("plain errors carry no code")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{LoadError("empty"), CodeLoadError},
		{UnsupportedFormat("data.json"), CodeUnsupportedFormat},
		{NetworkError("fetch failed", fmt.Errorf("timeout")), CodeNetworkError},
		{InsightUnavailable(fmt.Errorf("401")), CodeInsightUnavailable},
		{ConfigInvalid("bad port"), CodeConfigInvalid},
	}
	for _, test := range tests {
		if GetCode(test.err) != test.code {
			t.Errorf("expected %s, got %s", test.code, GetCode(test.err))
		}
	}
}
