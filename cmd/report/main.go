package main

import (
	"Prism/internal/api/config"
	"Prism/internal/api/dto"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/logger"
	"Prism/internal/pkg/source"
	"Prism/internal/service"
	"Prism/internal/wire"
	"context"
	"flag"
	"fmt"
	log "log/slog"
	"os"

	"github.com/goccy/go-json"
)

func main() {
	format := flag.String("format", "text", "Output format: text or json")
	demo := flag.Bool("demo", false, "Use the bundled sample exports instead of the configured source")
	dateOrder := flag.String("date-order", "", "Override slash date order: mdy or dmy")
	top := flag.Int("top", 5, "Posts listed per platform in text output")
	flag.Parse()

	if err := run(*format, *demo, *dateOrder, *top); err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}
}

func run(format string, demo bool, dateOrder string, top int) error {
	if err := config.LoadConfig(); err != nil {
		return err
	}
	cfg := config.Cfg
	logger.InitLogger(os.Stderr, cfg.Log.Level)

	ctx := logger.WithTraceID(context.Background(), "report-")

	var provider source.Provider = source.DemoProvider()
	if !demo {
		p, err := wire.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}
		provider = p
	}

	dashboardSvc, err := wire.NewDashboardService(provider, cfg)
	if err != nil {
		return err
	}
	dashboard, err := dashboardSvc.Build(ctx, service.DashboardOptions{DateOrder: field.DateOrder(dateOrder)})
	if err != nil {
		return err
	}

	switch format {
	case "json":
		out, err := dto.NewDashboardDTO(dashboard)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	case "text":
		renderText(os.Stdout, dashboard, top)
		log.DebugContext(ctx, "report rendered", "format", format)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
