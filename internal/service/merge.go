package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"sort"
	"time"
)

type dayKey struct {
	platform model.Platform
	day      time.Time
}

// MergeDaily 合并多份月度导出中重叠的日期。
// 同一 (平台, 日) 的每个计数字段独立取最大值而不是求和，重叠导出求和会重复计数；
// 对“新增关注”这类可能被平台修订的字段，取最大值只是经验做法。
// 输出按日期升序，对已合并的数据再次合并结果不变。
func MergeDaily(records []model.DailyMetric) []model.DailyMetric {
	merged := make(map[dayKey]*model.DailyMetric, len(records))
	order := make([]dayKey, 0, len(records))

	for _, r := range records {
		day := field.ToDay(r.Day)
		key := dayKey{platform: r.Platform, day: day}
		if existing, ok := merged[key]; ok {
			existing.Max(r.Counters)
			continue
		}
		rec := r
		rec.Day = day
		merged[key] = &rec
		order = append(order, key)
	}

	out := make([]model.DailyMetric, 0, len(order))
	for _, key := range order {
		out = append(out, *merged[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].Platform < out[j].Platform
	})
	return out
}
