package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/careermitra/careermitra-backend/internal/platform/ctxutil"
)

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())

	var seen *ctxutil.TraceData
	r.GET("/ping", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if seen == nil || seen.TraceID == "" || seen.RequestID == "" {
		t.Fatalf("trace data not attached: %+v", seen)
	}
	if got := w.Header().Get("X-Trace-Id"); got != seen.TraceID {
		t.Fatalf("trace header: got=%q want=%q", got, seen.TraceID)
	}
	if got := w.Header().Get("X-Request-Id"); got != seen.RequestID {
		t.Fatalf("request header: got=%q want=%q", got, seen.RequestID)
	}
}

func TestAttachTraceContextHonorsInboundHeaders(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-Id", "trace-123")
	req.Header.Set("X-Request-Id", "req-456")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-Id"); got != "trace-123" {
		t.Fatalf("trace header: got=%q want=trace-123", got)
	}
	if got := w.Header().Get("X-Request-Id"); got != "req-456" {
		t.Fatalf("request header: got=%q want=req-456", got)
	}
}
