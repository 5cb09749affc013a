package service

import (
	"Prism/internal/model"
	"testing"
	"time"
)

func series(platform model.Platform, start time.Time, views ...float64) []model.DailyMetric {
	out := make([]model.DailyMetric, 0, len(views))
	for i, v := range views {
		out = append(out, model.DailyMetric{
			Platform: platform,
			Day:      start.AddDate(0, 0, i),
			Counters: model.Counters{Views: v, Likes: v / 10, Posts: 1},
		})
	}
	return out
}

func TestMonthlySumsMatchDaily(t *testing.T) {
	a := NewAggregator()
	daily := series(model.PlatformX, day(2025, 1, 28), 10, 20, 30, 40, 50, 60)
	months := a.Monthly(daily)

	if len(months) != 2 || months[0].MonthKey != "2025-01" || months[1].MonthKey != "2025-02" {
		t.Fatalf("months = %+v", months)
	}
	for _, m := range months {
		var want model.Counters
		for _, d := range daily {
			if d.Day.Format(monthKeyLayout) == m.MonthKey {
				want.Add(d.Counters)
			}
		}
		for _, f := range model.CounterFields {
			if got, exp := *f.Ptr(&m.Counters), *f.Ptr(&want); got != exp {
				t.Errorf("%s %s = %v, want %v", m.MonthKey, f.Name, got, exp)
			}
		}
	}
	if months[0].Days != 4 || months[1].Days != 2 {
		t.Errorf("days = %d/%d", months[0].Days, months[1].Days)
	}

	total := a.Totals(months)
	if total.Views != 210 || total.Days != 6 {
		t.Errorf("totals = %+v", total)
	}
}

func TestDataQualityCountsGap(t *testing.T) {
	a := NewAggregator()
	var daily []model.DailyMetric
	for d := 1; d <= 10; d++ {
		if d == 5 {
			continue
		}
		views := 100.0
		if d == 7 {
			views = 0
		}
		daily = append(daily, model.DailyMetric{Platform: model.PlatformX, Day: day(2025, 4, d), Counters: model.Counters{Views: views}})
	}

	q := a.DataQuality(daily)
	if q.Coverage == nil || !q.Coverage.Start.Equal(day(2025, 4, 1)) || !q.Coverage.End.Equal(day(2025, 4, 10)) {
		t.Fatalf("coverage = %+v", q.Coverage)
	}
	if q.ExpectedDays != 10 || q.Coverage.Days != 9 || q.MissingDays != 1 {
		t.Errorf("expected %d observed %d missing %d", q.ExpectedDays, q.Coverage.Days, q.MissingDays)
	}
	if q.ZeroMetricDays != 1 {
		t.Errorf("zero days = %d", q.ZeroMetricDays)
	}
}

func TestDataQualityLongSpan(t *testing.T) {
	daily := []model.DailyMetric{
		{Platform: model.PlatformX, Day: day(1600, 1, 1), Counters: model.Counters{Views: 1}},
		{Platform: model.PlatformX, Day: day(2025, 1, 1), Counters: model.Counters{Views: 1}},
	}
	q := NewAggregator().DataQuality(daily)
	if q.ExpectedDays != 155230 || q.MissingDays != 155228 {
		t.Errorf("expected %d missing %d", q.ExpectedDays, q.MissingDays)
	}
}

func TestCoverageEmpty(t *testing.T) {
	a := NewAggregator()
	if c := a.Coverage(nil); c != nil {
		t.Errorf("coverage of empty series = %+v", c)
	}
	if q := a.DataQuality(nil); q.ExpectedDays != 0 || q.MissingDays != 0 {
		t.Errorf("quality of empty series = %+v", q)
	}
}

func TestMonthOverMonth(t *testing.T) {
	a := NewAggregator()

	single := a.MonthOverMonth([]model.MonthSummary{{MonthKey: "2025-01", Counters: model.Counters{Views: 10}}})
	for name, d := range single.Deltas {
		if d != nil {
			t.Errorf("single month %s = %v, want nil", name, *d)
		}
	}

	g := a.MonthOverMonth([]model.MonthSummary{
		{MonthKey: "2024-12", Counters: model.Counters{Views: 1}},
		{MonthKey: "2025-01", Counters: model.Counters{Views: 100, Likes: 0}},
		{MonthKey: "2025-02", Counters: model.Counters{Views: 150, Likes: 4}},
	})
	if g.Previous != "2025-01" || g.Current != "2025-02" {
		t.Errorf("compared %s -> %s", g.Previous, g.Current)
	}
	if d := g.Deltas["views"]; d == nil || *d != 0.5 {
		t.Errorf("views delta = %v", d)
	}
	if d, ok := g.Deltas["likes"]; !ok || d != nil {
		t.Errorf("likes delta with zero previous = %v", d)
	}
}

func TestCombineSumsPlatformsPerDay(t *testing.T) {
	a := NewAggregator()
	x := series(model.PlatformX, day(2025, 1, 1), 10, 20)
	li := series(model.PlatformLinkedIn, day(2025, 1, 2), 5, 7)

	combined := a.Combine(x, li)
	if len(combined) != 3 {
		t.Fatalf("combined days = %d", len(combined))
	}
	if combined[1].Views != 25 || combined[1].Platform != model.PlatformAll {
		t.Errorf("2025-01-02 = %+v", combined[1])
	}

	months := a.Monthly(combined)
	if months[0].Days != 3 {
		t.Errorf("combined month days = %d, want distinct days", months[0].Days)
	}
}
