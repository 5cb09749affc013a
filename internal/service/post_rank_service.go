package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
	"Prism/internal/pkg/table"
	"fmt"
	"sort"
	"strings"
	"time"
)

const unknownContentType = "Unknown"

// RankingLimits 各排行保留的条数
type RankingLimits struct {
	TopPosts     int
	ContentTypes int
	TimeSlots    int
}

// DefaultRankingLimits 前 5 帖子、前 6 内容类型、前 5 时段
var DefaultRankingLimits = RankingLimits{TopPosts: 5, ContentTypes: 6, TimeSlots: 5}

// PostRanker 帖子去重与排行
type PostRanker struct {
	order  field.DateOrder
	limits RankingLimits
}

func NewPostRanker(order field.DateOrder, limits RankingLimits) *PostRanker {
	if limits.TopPosts <= 0 {
		limits.TopPosts = DefaultRankingLimits.TopPosts
	}
	if limits.ContentTypes <= 0 {
		limits.ContentTypes = DefaultRankingLimits.ContentTypes
	}
	if limits.TimeSlots <= 0 {
		limits.TimeSlots = DefaultRankingLimits.TimeSlots
	}
	return &PostRanker{order: order, limits: limits}
}

// BuildX 构建 X 帖子，发布时间可以缺失
func (r *PostRanker) BuildX(tables []table.Table) []model.PostSummary {
	p := field.NewDateParser(DatasetSpecs[model.DatasetXPosts].Date, r.order)
	var posts []model.PostSummary
	for _, t := range tables {
		for _, row := range t.Rows {
			text := row.Value(colPostText...)
			link := row.Value(colPostLink...)
			if text == "" && link == "" {
				continue
			}
			post := buildPost(model.PlatformX, row, text, link)
			if dt, ok := p.Parse(row.Value(colPostTime...)); ok {
				created := dt.Time
				post.CreatedAt = &created
				post.TimeKnown = dt.TimeKnown
			}
			posts = append(posts, post)
		}
	}
	return Dedupe(posts, false)
}

// BuildLinkedIn 构建 LinkedIn 帖子，无法解析发布时间的行被丢弃
func (r *PostRanker) BuildLinkedIn(tables []table.Table) []model.PostSummary {
	p := field.NewDateParser(DatasetSpecs[model.DatasetLinkedInPosts].Date, r.order)
	var posts []model.PostSummary
	for _, t := range tables {
		for _, row := range t.Rows {
			dt, ok := p.Parse(row.Value(colPostTime...))
			if !ok {
				continue
			}
			post := buildPost(model.PlatformLinkedIn, row, row.Value(colPostText...), row.Value(colPostLink...))
			created := dt.Time
			post.CreatedAt = &created
			post.TimeKnown = dt.TimeKnown
			post.ContentType = row.Value(colContentType...)
			posts = append(posts, post)
		}
	}
	return Dedupe(posts, true)
}

func buildPost(platform model.Platform, row table.Row, text, link string) model.PostSummary {
	post := model.PostSummary{
		Platform:    platform,
		Title:       text,
		Permalink:   link,
		Impressions: field.Count(row.Value(colImpressions...)),
		Views:       field.Count(row.Value(colPostViews...)),
		Likes:       field.Count(row.Value(colLikes...)),
		Comments:    field.Count(row.Value(colReplies...)),
		Reposts:     field.Count(row.Value(colReposts...)),
		Clicks:      field.Count(row.Value(colClicks...)),
	}
	post.EngagementRate = field.RateOr(
		row.Value(colRate...),
		field.EngagementRate(post.Likes, post.Comments, post.Reposts, post.Impressions),
	)
	return post
}

// PostKey 去重键：优先链接，否则为规范化文本与发布时间的组合
func PostKey(p model.PostSummary) string {
	if link := strings.TrimSpace(p.Permalink); link != "" {
		return "link:" + link
	}
	created := ""
	if p.CreatedAt != nil {
		created = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return "text:" + strings.ToLower(strings.Join(strings.Fields(p.Title), " ")) + "|" + created
}

// Dedupe 按去重键合并跨文件的重复帖子：曝光严格更大者胜出；
// preferTime 为真时曝光相同优先保留带具体时刻的记录
func Dedupe(posts []model.PostSummary, preferTime bool) []model.PostSummary {
	index := make(map[string]int, len(posts))
	out := make([]model.PostSummary, 0, len(posts))
	for _, p := range posts {
		key := PostKey(p)
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, p)
			continue
		}
		cur := out[i]
		if p.Impressions > cur.Impressions ||
			(preferTime && p.Impressions == cur.Impressions && p.TimeKnown && !cur.TimeKnown) {
			out[i] = p
		}
	}
	return out
}

// TopByImpressions 按曝光降序，曝光相同按播放量降序
func TopByImpressions(posts []model.PostSummary, n int) []model.PostSummary {
	sorted := append([]model.PostSummary(nil), posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Impressions != sorted[j].Impressions {
			return sorted[i].Impressions > sorted[j].Impressions
		}
		return sorted[i].Views > sorted[j].Views
	})
	return head(sorted, n)
}

// TopByEngagement 仅在互动率已知的帖子中按互动率降序
func TopByEngagement(posts []model.PostSummary, n int) []model.PostSummary {
	known := make([]model.PostSummary, 0, len(posts))
	for _, p := range posts {
		if p.EngagementRate != nil {
			known = append(known, p)
		}
	}
	sort.SliceStable(known, func(i, j int) bool {
		return *known[i].EngagementRate > *known[j].EngagementRate
	})
	return head(known, n)
}

// ContentTypes 按内容类型汇总，取曝光最高的 n 个
func ContentTypes(posts []model.PostSummary, n int) []model.ContentTypeSummary {
	index := make(map[string]int)
	var out []model.ContentTypeSummary
	for _, p := range posts {
		label := strings.TrimSpace(p.ContentType)
		if label == "" {
			label = unknownContentType
		}
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, model.ContentTypeSummary{Type: label})
		}
		out[i].Posts++
		out[i].Impressions += p.Impressions
		out[i].Views += p.Views
		out[i].Engagements += p.Engagements()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Impressions > out[j].Impressions
	})
	return head(out, n)
}

// TimeSlots 按 (星期, 小时) 汇总；发布时刻未知时只按星期。无互动率的时段不参与排行
func TimeSlots(posts []model.PostSummary, n int) []model.TimeSlot {
	index := make(map[string]int)
	var slots []model.TimeSlot
	for _, p := range posts {
		if p.CreatedAt == nil {
			continue
		}
		t := p.CreatedAt.UTC()
		slot := model.TimeSlot{Weekday: t.Weekday(), Label: t.Weekday().String()[:3]}
		if p.TimeKnown {
			hour := t.Hour()
			slot.Hour = &hour
			slot.Label = fmt.Sprintf("%s %02d:00", slot.Label, hour)
		}

		i, ok := index[slot.Label]
		if !ok {
			i = len(slots)
			index[slot.Label] = i
			slots = append(slots, slot)
		}
		slots[i].Posts++
		slots[i].Impressions += p.Impressions
		slots[i].Engagements += p.Engagements()
	}

	ranked := make([]model.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Posts == 0 || s.Impressions <= 0 {
			continue
		}
		rate := s.Engagements / s.Impressions
		s.EngagementRate = &rate
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if *ranked[i].EngagementRate != *ranked[j].EngagementRate {
			return *ranked[i].EngagementRate > *ranked[j].EngagementRate
		}
		return ranked[i].Impressions > ranked[j].Impressions
	})
	return head(ranked, n)
}

// PostsPerDay 按发布自然日计数，供 LinkedIn 每日指标补充发帖数
func PostsPerDay(posts []model.PostSummary) map[time.Time]int {
	counts := make(map[time.Time]int)
	for _, p := range posts {
		if p.CreatedAt == nil {
			continue
		}
		counts[field.ToDay(*p.CreatedAt)]++
	}
	return counts
}

// Rank 生成单个平台的排行视图，内容类型与时段只对 LinkedIn 计算
func (r *PostRanker) Rank(platform model.Platform, posts []model.PostSummary) model.PostRanking {
	ranking := model.PostRanking{
		Platform:       platform,
		Posts:          len(posts),
		TopImpressions: TopByImpressions(posts, r.limits.TopPosts),
		TopEngagement:  TopByEngagement(posts, r.limits.TopPosts),
	}
	if platform == model.PlatformLinkedIn {
		ranking.ContentTypes = ContentTypes(posts, r.limits.ContentTypes)
		ranking.TimeSlots = TimeSlots(posts, r.limits.TimeSlots)
	}
	return ranking
}

func head[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
