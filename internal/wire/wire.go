package wire

import (
	"Prism/internal/api"
	"Prism/internal/api/config"
	"Prism/internal/api/handler"
	"Prism/internal/job"
	"Prism/internal/pkg/cron"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/minio"
	"Prism/internal/pkg/source"
	"Prism/internal/service"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	CronMgr      *cron.Manager
	DashboardSvc service.DashboardService
}

// NewProvider 按配置选择导出文件来源
func NewProvider(ctx context.Context, cfg *config.Config) (source.Provider, error) {
	switch cfg.Source.Kind {
	case "local", "":
		return source.NewLocalProvider(cfg.Source.DataDir, cfg.Source.SampleDir, cfg.Source.Patterns), nil
	case "minio":
		if err := minio.Init(ctx, cfg.MinIO); err != nil {
			return nil, err
		}
		return source.NewMinioProvider(minio.Client, cfg.MinIO.Bucket, cfg.MinIO.Prefix, cfg.Source.Patterns), nil
	default:
		return nil, fmt.Errorf("%w: %s", service.ErrSourceKind, cfg.Source.Kind)
	}
}

// NewDashboardService 由配置构造管道服务
func NewDashboardService(provider source.Provider, cfg *config.Config) (service.DashboardService, error) {
	var limits service.RankingLimits
	if err := copier.Copy(&limits, &cfg.Ranking); err != nil {
		return nil, err
	}
	return service.NewDashboardService(provider, field.DateOrder(cfg.Parse.DateOrder), limits), nil
}

func BuildApplication(ctx context.Context, cfg *config.Config) (*ApplicationContainer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	dashboardService, err := NewDashboardService(provider, cfg)
	if err != nil {
		return nil, err
	}
	auditService := service.NewAuditService(dashboardService)

	handlers := &api.HandlersGroup{
		DashboardHandler: handler.NewDashboardHandler(dashboardService, auditService),
	}

	router := api.SetupRouter(handlers)

	auditJob := job.NewDatasetAuditJob(auditService)
	cronMgr := cron.NewCronManager(cfg.Audit.Spec, auditJob)

	return &ApplicationContainer{
		Router:       router,
		CronMgr:      cronMgr,
		DashboardSvc: dashboardService,
	}, nil
}
