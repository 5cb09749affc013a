package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/table"
	"time"
)

// VideoEntry 视频概览表中某一天的数据
type VideoEntry struct {
	Views              float64
	WatchTimeMs        float64
	CompletionWeighted float64
}

// MetricMapper 将平台导出行映射为每日指标
type MetricMapper struct {
	order field.DateOrder
}

func NewMetricMapper(order field.DateOrder) *MetricMapper {
	return &MetricMapper{order: order}
}

func (m *MetricMapper) parser(id model.DatasetID) field.DateParser {
	return field.NewDateParser(DatasetSpecs[id].Date, m.order)
}

// BuildVideoIndex 按自然日索引视频概览，同一天重复时保留播放量更大者，相同则保留观看时长更长者
func (m *MetricMapper) BuildVideoIndex(tables []table.Table) map[time.Time]VideoEntry {
	p := m.parser(model.DatasetXVideo)
	index := make(map[time.Time]VideoEntry)
	for _, t := range tables {
		for _, row := range t.Rows {
			dt, ok := p.Parse(row.Value(colDate...))
			if !ok {
				continue
			}
			views := field.Count(row.Value(colWatchViews...))
			entry := VideoEntry{
				Views:       views,
				WatchTimeMs: field.Count(row.Value(colWatchTime...)),
			}
			if rate := field.Rate(row.Value(colCompletion...)); rate != nil && *rate > 0 {
				entry.CompletionWeighted = *rate * views
			}

			day := dt.Day()
			prev, exists := index[day]
			if !exists || entry.Views > prev.Views ||
				(entry.Views == prev.Views && entry.WatchTimeMs > prev.WatchTimeMs) {
				index[day] = entry
			}
		}
	}
	return index
}

// MapX 映射 X 每日指标，视频相关字段由视频概览按日补充
func (m *MetricMapper) MapX(tables []table.Table, video map[time.Time]VideoEntry) []model.DailyMetric {
	p := m.parser(model.DatasetXDaily)
	var out []model.DailyMetric
	for _, t := range tables {
		for _, row := range t.Rows {
			dt, ok := p.Parse(row.Value(colDate...))
			if !ok {
				continue
			}
			day := dt.Day()
			v := video[day]

			videoViews := field.Count(row.Value(colVideoViews...))
			if videoViews <= 0 {
				videoViews = v.Views
			}

			out = append(out, model.DailyMetric{
				Platform: model.PlatformX,
				Day:      day,
				Counters: model.Counters{
					Views:                   field.Count(row.Value(colImpressions...)),
					Likes:                   field.Count(row.Value(colLikes...)),
					Comments:                field.Count(row.Value(colReplies...)),
					Reposts:                 field.Count(row.Value(colReposts...)),
					Clicks:                  field.Count(row.Value(colClicks...)),
					Shares:                  field.Count(row.Value(colShares...)),
					Bookmarks:               field.Count(row.Value(colBookmarks...)),
					ProfileVisits:           field.Count(row.Value(colProfileVisits...)),
					Engagements:             field.Count(row.Value(colEngagements...)),
					VideoViews:              videoViews,
					VideoWatchViews:         v.Views,
					VideoWatchTimeMs:        v.WatchTimeMs,
					VideoCompletionWeighted: v.CompletionWeighted,
					Posts:                   field.Count(row.Value(colPostsCreated...)),
					NewFollows:              field.Count(row.Value(colNewFollows...)),
					Unfollows:               field.Count(row.Value(colUnfollows...)),
				},
			})
		}
	}
	return out
}

// MapLinkedIn 映射 LinkedIn 每日指标，发帖数来自帖子排行的按日计数
func (m *MetricMapper) MapLinkedIn(tables []table.Table, postsPerDay map[time.Time]int) []model.DailyMetric {
	p := m.parser(model.DatasetLinkedInDaily)
	var out []model.DailyMetric
	for _, t := range tables {
		for _, row := range t.Rows {
			dt, ok := p.Parse(row.Value(colDate...))
			if !ok {
				continue
			}
			day := dt.Day()

			c := model.Counters{
				Views:      field.Count(row.Value(colImpressions...)),
				Likes:      field.Count(row.Value(colLikes...)),
				Comments:   field.Count(row.Value(colReplies...)),
				Reposts:    field.Count(row.Value(colReposts...)),
				Clicks:     field.Count(row.Value(colClicks...)),
				VideoViews: field.Count(row.Value(colVideoViews...)),
				Posts:      float64(postsPerDay[day]),
				NewFollows: field.Count(row.Value(colNewFollows...)),
			}
			if raw, ok := row.Get(colEngagements...); ok && raw != "" {
				c.Engagements = field.Count(raw)
			} else {
				c.Engagements = c.Likes + c.Comments + c.Reposts
			}

			out = append(out, model.DailyMetric{
				Platform: model.PlatformLinkedIn,
				Day:      day,
				Counters: c,
			})
		}
	}
	return out
}
