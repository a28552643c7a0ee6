package placement

import (
	"errors"
	"fmt"
	"testing"
)

func TestDescribeKnownCodes(t *testing.T) {
	if got := Describe(ErrArg1NotObject); got != "Error: the provided item in position 1 is not an object" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := Describe(Success); got != "success" {
		t.Fatalf("expected success message, got %q", got)
	}
	for code := ErrItem; code <= ErrParentNotLayout; code++ {
		if !code.Known() {
			t.Fatalf("expected code %d to be catalogued", code)
		}
		if Describe(code) == Describe(CodeUnknown) {
			t.Fatalf("expected code %d to have its own message", code)
		}
	}
}

func TestDescribeUnknownCodesFallBack(t *testing.T) {
	unknown := Describe(CodeUnknown)
	for _, code := range []Code{-2, 2, 42, 83, 95, 1 << 20} {
		if got := Describe(code); got != unknown {
			t.Fatalf("expected code %d to describe as unknown, got %q", code, got)
		}
		if code.Known() {
			t.Fatalf("expected code %d to be unknown", code)
		}
	}
}

func TestCodeStringUsesCatalog(t *testing.T) {
	if ErrNameTaken.String() != Describe(ErrNameTaken) {
		t.Fatalf("expected String to match Describe")
	}
	if !Success.OK() || Failure.OK() {
		t.Fatalf("expected only Success to be OK")
	}
}

func TestCodeUnwrapsFromWrappedError(t *testing.T) {
	err := fmt.Errorf("line 3: %w", ErrNameTaken)
	var code Code
	if !errors.As(err, &code) {
		t.Fatalf("expected errors.As to find a Code in %v", err)
	}
	if code != ErrNameTaken {
		t.Fatalf("expected %d, got %d", ErrNameTaken, code)
	}
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected errors.Is to match the wrapped code")
	}
	if err.Error() != "line 3: "+Describe(ErrNameTaken) {
		t.Fatalf("expected catalog message in error text, got %q", err.Error())
	}
}
