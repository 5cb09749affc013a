package logger

import (
	"io"
	log "log/slog"
	"os"
	"strings"
)

// LogWriter 访问日志与结构化日志共用的输出
var LogWriter io.Writer = os.Stdout

// ParseLevel 未知级别按 info 处理
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// InitLogger 以 JSON 格式输出到 w，并注入 trace_id
func InitLogger(w io.Writer, level string) {
	if w == nil {
		w = os.Stdout
	}
	LogWriter = w
	h := log.NewJSONHandler(w, &log.HandlerOptions{Level: ParseLevel(level)})
	log.SetDefault(log.New(&ContextHandler{h}))
}
