package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_DefaultsTo200(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if w.StatusCode() != http.StatusOK {
		t.Fatalf("StatusCode=%d, want 200", w.StatusCode())
	}
	if w.BytesWritten() != 2 {
		t.Fatalf("BytesWritten=%d, want 2", w.BytesWritten())
	}
}

func TestWrap_RecordsExplicitStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK) // second call ignored

	if w.StatusCode() != http.StatusNotFound {
		t.Fatalf("StatusCode=%d, want 404", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("recorder code=%d, want 404", rec.Code)
	}
}

func TestWrap_AccumulatesBytes(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	_, _ = w.Write([]byte("hello "))
	_, _ = w.Write([]byte("world"))

	if w.BytesWritten() != 11 {
		t.Fatalf("BytesWritten=%d, want 11", w.BytesWritten())
	}
}
