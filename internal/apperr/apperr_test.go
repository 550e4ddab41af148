package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Invalid("bad"), http.StatusBadRequest},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("twice"), http.StatusConflict},
		{Forbidden("mine"), http.StatusForbidden},
		{&Error{Code: CodeIncomplete}, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", NotFound("gone")), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v)=%d, want %d", c.err, got, c.want)
		}
	}
}

func TestErrorUnwrapAndMessage(t *testing.T) {
	root := errors.New("record not found")
	err := New(CodeNotFound, "rating 3 not found", root)
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped root error")
	}
	if err.Error() != "rating 3 not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if (&Error{Err: root}).Error() != "record not found" {
		t.Fatalf("expected fallback to wrapped error message")
	}
}
