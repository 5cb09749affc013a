package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/source"
	"Prism/internal/pkg/table"
	"context"
	log "log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// PostSort 帖子排序方式
type PostSort string

const (
	SortImpressions PostSort = "impressions"
	SortEngagement  PostSort = "engagement"
)

const maxPostLimit = 50

// DashboardOptions 单次构建的参数，零值使用服务默认配置
type DashboardOptions struct {
	DateOrder field.DateOrder
}

// PostQuery 按需帖子排行查询
type PostQuery struct {
	Platform  model.Platform
	Sort      PostSort
	Limit     int
	DateOrder field.DateOrder
}

type DashboardService interface {
	Build(ctx context.Context, opts DashboardOptions) (*model.Dashboard, error)
	Validate(ctx context.Context) (*model.ValidationReport, error)
	Posts(ctx context.Context, query PostQuery) ([]model.PostSummary, error)
}

type dashboardServiceImpl struct {
	provider source.Provider
	order    field.DateOrder
	limits   RankingLimits
	agg      *Aggregator
}

func NewDashboardService(provider source.Provider, order field.DateOrder, limits RankingLimits) DashboardService {
	return &dashboardServiceImpl{
		provider: provider,
		order:    order,
		limits:   limits,
		agg:      NewAggregator(),
	}
}

// dataset 单个数据集加载并抽取后的结果
type dataset struct {
	bundle *source.Bundle
	tables []table.Table
}

type datasets map[model.DatasetID]*dataset

func (d datasets) tables(id model.DatasetID) []table.Table {
	if ds, ok := d[id]; ok {
		return ds.tables
	}
	return nil
}

// Build 完整运行一次管道：并发加载五个数据集，再按平台并发映射、合并与排行
func (s *dashboardServiceImpl) Build(ctx context.Context, opts DashboardOptions) (*model.Dashboard, error) {
	start := time.Now()
	order, err := s.resolveOrder(opts.DateOrder)
	if err != nil {
		return nil, err
	}

	loaded, err := s.load(ctx, model.AllDatasets...)
	if err != nil {
		return nil, err
	}

	mapper := NewMetricMapper(order)
	ranker := NewPostRanker(order, s.limits)

	var (
		xDaily, liDaily []model.DailyMetric
		xPosts, liPosts []model.PostSummary
	)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		video := mapper.BuildVideoIndex(loaded.tables(model.DatasetXVideo))
		xDaily = MergeDaily(mapper.MapX(loaded.tables(model.DatasetXDaily), video))
	}()
	go func() {
		defer wg.Done()
		xPosts = ranker.BuildX(loaded.tables(model.DatasetXPosts))
	}()
	go func() {
		defer wg.Done()
		// LinkedIn 每日发帖数依赖帖子去重结果
		liPosts = ranker.BuildLinkedIn(loaded.tables(model.DatasetLinkedInPosts))
		liDaily = MergeDaily(mapper.MapLinkedIn(loaded.tables(model.DatasetLinkedInDaily), PostsPerDay(liPosts)))
	}()
	wg.Wait()

	report := s.report(loaded)
	dashboard := &model.Dashboard{
		X:                s.agg.Series(model.PlatformX, xDaily),
		LinkedIn:         s.agg.Series(model.PlatformLinkedIn, liDaily),
		Combined:         s.agg.Series(model.PlatformAll, s.agg.Combine(xDaily, liDaily)),
		XPosts:           ranker.Rank(model.PlatformX, xPosts),
		LinkedInPosts:    ranker.Rank(model.PlatformLinkedIn, liPosts),
		Validations:      report.Validations,
		UsingSampleData:  report.UsingSampleData,
		AllXPosts:        xPosts,
		AllLinkedInPosts: liPosts,
	}

	log.InfoContext(ctx, "dashboard built",
		log.Int("x_days", len(xDaily)),
		log.Int("linkedin_days", len(liDaily)),
		log.Int("x_posts", len(xPosts)),
		log.Int("linkedin_posts", len(liPosts)),
		log.Bool("sample", dashboard.UsingSampleData),
		log.Duration("latency", time.Since(start)),
	)
	return dashboard, nil
}

// Validate 只加载与抽取，不做映射与聚合
func (s *dashboardServiceImpl) Validate(ctx context.Context) (*model.ValidationReport, error) {
	loaded, err := s.load(ctx, model.AllDatasets...)
	if err != nil {
		return nil, err
	}
	report := s.report(loaded)
	return &report, nil
}

// Posts 按平台读取帖子数据集并按指定方式排序
func (s *dashboardServiceImpl) Posts(ctx context.Context, query PostQuery) ([]model.PostSummary, error) {
	if query.Limit < 1 || query.Limit > maxPostLimit {
		return nil, ErrParamInvalid
	}
	order, err := s.resolveOrder(query.DateOrder)
	if err != nil {
		return nil, err
	}

	ranker := NewPostRanker(order, s.limits)
	var posts []model.PostSummary
	switch query.Platform {
	case model.PlatformX:
		loaded, err := s.load(ctx, model.DatasetXPosts)
		if err != nil {
			return nil, err
		}
		posts = ranker.BuildX(loaded.tables(model.DatasetXPosts))
	case model.PlatformLinkedIn:
		loaded, err := s.load(ctx, model.DatasetLinkedInPosts)
		if err != nil {
			return nil, err
		}
		posts = ranker.BuildLinkedIn(loaded.tables(model.DatasetLinkedInPosts))
	default:
		return nil, ErrPlatformInvalid
	}

	switch query.Sort {
	case SortImpressions, "":
		return TopByImpressions(posts, query.Limit), nil
	case SortEngagement:
		return TopByEngagement(posts, query.Limit), nil
	default:
		return nil, ErrSortInvalid
	}
}

func (s *dashboardServiceImpl) resolveOrder(order field.DateOrder) (field.DateOrder, error) {
	switch order {
	case "":
		return s.order, nil
	case field.MonthFirst, field.DayFirst:
		return order, nil
	default:
		return "", ErrDateOrderInvalid
	}
}

// load 并发读取数据集；单个数据集失败时降级为缺失，不影响其它数据集
func (s *dashboardServiceImpl) load(ctx context.Context, ids ...model.DatasetID) (datasets, error) {
	results := make([]*dataset, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bundle, err := s.provider.Load(gctx, id)
			if err != nil {
				log.WarnContext(ctx, "dataset load failed, treated as absent", "dataset", id, "err", err)
				bundle = source.Absent(id)
			}
			if bundle == nil {
				bundle = source.Absent(id)
			}
			results[i] = &dataset{bundle: bundle, tables: extractTables(DatasetSpecs[id], bundle)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(datasets, len(ids))
	for i, id := range ids {
		out[id] = results[i]
	}
	return out, nil
}

// extractTables 每个文件依次尝试数据集的表头标签，取第一个能定位到表头的结果
func extractTables(spec DatasetSpec, bundle *source.Bundle) []table.Table {
	tables := make([]table.Table, 0, len(bundle.Files))
	for _, f := range bundle.Files {
		var t table.Table
		for _, label := range spec.HeaderLabels {
			if t = table.Extract(f.Content, label); !t.Empty() {
				break
			}
		}
		tables = append(tables, t)
	}
	return tables
}

func (s *dashboardServiceImpl) report(loaded datasets) model.ValidationReport {
	report := model.ValidationReport{Validations: make([]model.CsvValidation, 0, len(model.AllDatasets))}
	for _, id := range model.AllDatasets {
		ds, ok := loaded[id]
		if !ok {
			continue
		}
		report.Validations = append(report.Validations, ValidateDataset(DatasetSpecs[id], ds.bundle, ds.tables))
		if ds.bundle.Provenance == model.ProvenanceSample {
			report.UsingSampleData = true
		}
	}
	return report
}
