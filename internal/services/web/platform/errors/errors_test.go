package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{kind: KindNotFound, want: http.StatusNotFound},
		{kind: KindMethodNotAllowed, want: http.StatusMethodNotAllowed},
		{kind: KindUnknown, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "x")); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusCoversNilAndUntyped(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestHTTPStatusSeesThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("render page: %w", E(KindNotFound, "missing"))
	if got := HTTPStatus(err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, http.StatusNotFound)
	}
}

func TestErrorStringFallbacks(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, KindNotFound)
	}
	cause := errors.New("disk on fire")
	if got := (Error{Kind: KindUnknown, Err: cause}).Error(); got != "disk on fire" {
		t.Fatalf("Error() = %q, want cause message", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	if Wrap(KindUnknown, "x", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	cause := errors.New("template failure")
	err := Wrap(KindUnknown, "render", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if KindOf(err) != KindUnknown {
		t.Fatalf("KindOf() = %s", KindOf(err))
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindNotFound, " error.not_found.title ", "missing")); got != "error.not_found.title" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q", got)
	}
}
