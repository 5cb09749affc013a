package main

import (
	"Prism/internal/model"
	"Prism/internal/service"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// growthFields 文本报告中展示环比的指标
var growthFields = []string{"views", "engagements", "newFollows"}

func renderText(w io.Writer, d *model.Dashboard, top int) {
	if d.UsingSampleData {
		fmt.Fprintln(w, "NOTE: some datasets fell back to bundled sample data")
	}

	for _, s := range []model.PlatformSeries{d.X, d.LinkedIn, d.Combined} {
		renderSeries(w, s)
	}

	renderPosts(w, model.PlatformX, d.AllXPosts, top)
	renderPosts(w, model.PlatformLinkedIn, d.AllLinkedInPosts, top)

	fmt.Fprintln(w, "\n== validation")
	for _, v := range d.Validations {
		line := fmt.Sprintf("%-16s %-16s %-8s rows=%s", v.Dataset, v.Status, v.Provenance, humanize.Comma(int64(v.Rows)))
		if len(v.MissingRequired) > 0 {
			line += " missing required: " + strings.Join(v.MissingRequired, ", ")
		}
		fmt.Fprintln(w, line)
	}
}

func renderSeries(w io.Writer, s model.PlatformSeries) {
	fmt.Fprintf(w, "\n== %s\n", s.Platform)
	if s.Coverage == nil {
		fmt.Fprintln(w, "no daily data")
		return
	}
	q := s.DataQuality
	fmt.Fprintf(w, "coverage %s .. %s, %d of %d days (%d missing, %d with zero views)\n",
		s.Coverage.Start.Format("2006-01-02"), s.Coverage.End.Format("2006-01-02"),
		s.Coverage.Days, q.ExpectedDays, q.MissingDays, q.ZeroMetricDays)
	for _, m := range s.Monthly {
		fmt.Fprintf(w, "%s  views %12s  engagements %10s  posts %6s  new follows %8s\n",
			m.MonthKey, commas(m.Views), commas(m.Engagements), commas(m.Posts), commas(m.NewFollows))
	}
	fmt.Fprintf(w, "total    views %12s  engagements %10s\n", commas(s.Totals.Views), commas(s.Totals.Engagements))
	if s.Growth.Previous == "" || len(s.Monthly) == 0 {
		return
	}
	current := s.Monthly[len(s.Monthly)-1]
	fmt.Fprintf(w, "%s vs %s", s.Growth.Current, s.Growth.Previous)
	for _, name := range growthFields {
		fmt.Fprintf(w, "  %s %s (%s)", name, commas(current.Get(name)), percent(s.Growth.Deltas[name]))
	}
	fmt.Fprintln(w)
}

func renderPosts(w io.Writer, platform model.Platform, posts []model.PostSummary, top int) {
	fmt.Fprintf(w, "\n== top %s posts\n", platform)
	if len(posts) == 0 {
		fmt.Fprintln(w, "no posts")
		return
	}
	for i, p := range service.TopByImpressions(posts, top) {
		fmt.Fprintf(w, "%2d. %10s impressions  %-7s  %s\n", i+1, commas(p.Impressions), percent(p.EngagementRate), truncate(p.Title, 60))
	}
}

func commas(v float64) string {
	return humanize.Commaf(float64(int64(v + 0.5)))
}

func percent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return humanize.FormatFloat("#,###.#", *v*100) + "%"
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
