package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)}).With("component", "test")

	ctx := WithTraceID(context.Background(), "job-")
	l.InfoContext(ctx, "hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	id, _ := rec[TraceIDKey].(string)
	if !strings.HasPrefix(id, "job-") || id != TraceID(ctx) {
		t.Errorf("trace_id = %q, ctx has %q", id, TraceID(ctx))
	}
	if rec["component"] != "test" {
		t.Errorf("attrs lost after With: %v", rec)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.LevelDebug,
		"WARN":  log.LevelWarn,
		"error": log.LevelError,
		"":      log.LevelInfo,
		"loud":  log.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
