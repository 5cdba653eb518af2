package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]bool{"ok": true}, http.StatusCreated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if rec.Body.String() != `{"ok":true}` {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if n != rec.Body.Len() {
		t.Errorf("expected %d bytes written, got %d", rec.Body.Len(), n)
	}
}

func TestWriteJSON_Bool(t *testing.T) {
	rec := httptest.NewRecorder()

	if _, err := WriteJSON(rec, false, http.StatusOK); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != "false" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	if err == nil {
		t.Fatal("expected error for unmarshalable value")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
