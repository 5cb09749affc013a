package wire

import (
	"Prism/internal/api/config"
	"Prism/internal/service"
	"context"
	"errors"
	"testing"
)

func testConfig() *config.Config {
	return &config.Config{
		Source:  config.SourceConfig{Kind: "local", DataDir: "", SampleDir: ""},
		Parse:   config.ParseConfig{DateOrder: "dmy"},
		Ranking: config.RankingConfig{TopPosts: 3, ContentTypes: 2, TimeSlots: 1},
		Audit:   config.AuditConfig{Spec: "0 0 * * * *"},
	}
}

func TestBuildApplication(t *testing.T) {
	app, err := BuildApplication(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if app.Router == nil || app.CronMgr == nil || app.DashboardSvc == nil {
		t.Fatalf("app = %+v", app)
	}
	if err = app.CronMgr.RegisterJobs(); err != nil {
		t.Errorf("register jobs: %v", err)
	}

	d, err := app.DashboardSvc.Build(context.Background(), service.DashboardOptions{})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.UsingSampleData || len(d.Validations) != 5 {
		t.Errorf("empty dirs dashboard = %+v", d.Validations)
	}
}

func TestNewProviderRejectsUnknownKind(t *testing.T) {
	cfg := testConfig()
	cfg.Source.Kind = "ftp"
	if _, err := NewProvider(context.Background(), cfg); !errors.Is(err, service.ErrSourceKind) {
		t.Errorf("err = %v", err)
	}
}
