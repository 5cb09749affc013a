package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"sort"
	"time"
)

const (
	monthKeyLayout = "2006-01"
	secondsPerDay  = 24 * 60 * 60
)

// Aggregator 将每日指标汇总为月度、总计与覆盖统计
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Monthly 按 UTC 年月分桶累加，结果按月份升序
func (a *Aggregator) Monthly(daily []model.DailyMetric) []model.MonthSummary {
	buckets := make(map[string]*model.MonthSummary)
	for _, d := range daily {
		key := field.ToDay(d.Day).Format(monthKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &model.MonthSummary{MonthKey: key}
			buckets[key] = b
		}
		b.Add(d.Counters)
		b.Days++
	}

	months := make([]model.MonthSummary, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, *b)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].MonthKey < months[j].MonthKey
	})
	return months
}

// Totals 所有月份逐字段求和
func (a *Aggregator) Totals(months []model.MonthSummary) model.MonthSummary {
	total := model.MonthSummary{MonthKey: "total"}
	for _, m := range months {
		total.Add(m.Counters)
		total.Days += m.Days
	}
	return total
}

// Coverage 最早、最晚日期与记录数，空序列返回 nil
func (a *Aggregator) Coverage(daily []model.DailyMetric) *model.Coverage {
	if len(daily) == 0 {
		return nil
	}
	start := field.ToDay(daily[0].Day)
	end := start
	for _, d := range daily[1:] {
		day := field.ToDay(d.Day)
		if day.Before(start) {
			start = day
		}
		if day.After(end) {
			end = day
		}
	}
	return &model.Coverage{Start: start, End: end, Days: len(daily)}
}

// DataQuality 期望天数、缺失天数与曝光为零的天数
func (a *Aggregator) DataQuality(daily []model.DailyMetric) model.DataQualitySummary {
	summary := model.DataQualitySummary{Coverage: a.Coverage(daily)}
	if summary.Coverage == nil {
		return summary
	}

	summary.ExpectedDays = calendarDays(summary.Coverage.Start, summary.Coverage.End) + 1
	summary.MissingDays = max(summary.ExpectedDays-summary.Coverage.Days, 0)
	for _, d := range daily {
		if d.Views == 0 {
			summary.ZeroMetricDays++
		}
	}
	return summary
}

// calendarDays 两个自然日之间相差的天数
func calendarDays(from, to time.Time) int {
	return int((field.ToDay(to).Unix() - field.ToDay(from).Unix()) / secondsPerDay)
}

// Combine 两个平台已合并的序列按日相加，得到合并序列
func (a *Aggregator) Combine(series ...[]model.DailyMetric) []model.DailyMetric {
	var all []model.DailyMetric
	for _, s := range series {
		all = append(all, s...)
	}

	byDay := make(map[time.Time]*model.DailyMetric)
	for _, d := range all {
		day := field.ToDay(d.Day)
		c, ok := byDay[day]
		if !ok {
			c = &model.DailyMetric{Platform: model.PlatformAll, Day: day}
			byDay[day] = c
		}
		c.Add(d.Counters)
	}

	out := make([]model.DailyMetric, 0, len(byDay))
	for _, c := range byDay {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// MonthOverMonth 最近两个月逐字段环比，上月为 0 或不足两个月时为 nil
func (a *Aggregator) MonthOverMonth(months []model.MonthSummary) model.MonthGrowth {
	growth := model.MonthGrowth{Deltas: make(map[string]*float64, len(model.CounterFields))}
	for _, f := range model.CounterFields {
		growth.Deltas[f.Name] = nil
	}
	if len(months) < 2 {
		return growth
	}

	prev, cur := months[len(months)-2], months[len(months)-1]
	growth.Previous, growth.Current = prev.MonthKey, cur.MonthKey
	for _, f := range model.CounterFields {
		p := *f.Ptr(&prev.Counters)
		if p == 0 {
			continue
		}
		delta := (*f.Ptr(&cur.Counters) - p) / p
		growth.Deltas[f.Name] = &delta
	}
	return growth
}

// Series 组装单个平台的完整时间序列视图
func (a *Aggregator) Series(platform model.Platform, daily []model.DailyMetric) model.PlatformSeries {
	months := a.Monthly(daily)
	return model.PlatformSeries{
		Platform:    platform,
		Daily:       daily,
		Monthly:     months,
		Totals:      a.Totals(months),
		Coverage:    a.Coverage(daily),
		DataQuality: a.DataQuality(daily),
		Growth:      a.MonthOverMonth(months),
	}
}
