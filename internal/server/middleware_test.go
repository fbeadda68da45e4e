package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/nowplaying/internal/shared"
)

func TestRequestLogger(t *testing.T) {
	t.Run("Logs Status And Request ID", func(t *testing.T) {
		var buf bytes.Buffer
		logger := shared.NewLogger(&buf, shared.LogConfig{})

		var ctxLogged bool
		handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			LoggerFrom(r.Context(), nil).Info("inside handler")
			ctxLogged = true
			writePlain(w, http.StatusTeapot, "short and stout")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

		id := w.Header().Get("X-Request-ID")
		if id == "" {
			t.Fatal("expected X-Request-ID header")
		}
		if !ctxLogged {
			t.Fatal("expected handler to run")
		}

		out := buf.String()
		if strings.Count(out, "request_id="+id) != 2 {
			t.Errorf("expected both lines to carry the request id, got %q", out)
		}
		if !strings.Contains(out, "status=418") {
			t.Errorf("expected status in log line, got %q", out)
		}
		if !strings.Contains(out, "path=/login") {
			t.Errorf("expected path in log line, got %q", out)
		}
	})

	t.Run("Implicit OK Status", func(t *testing.T) {
		var buf bytes.Buffer
		handler := RequestLogger(shared.NewLogger(&buf, shared.LogConfig{}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(buf.String(), "status=200") {
			t.Errorf("expected status=200, got %q", buf.String())
		}
	})

	t.Run("LoggerFrom Falls Back", func(t *testing.T) {
		fallback := shared.NewLogger(&bytes.Buffer{}, shared.LogConfig{})
		if LoggerFrom(context.Background(), fallback) != fallback {
			t.Error("expected fallback logger")
		}
	})
}
