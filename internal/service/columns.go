package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/field"
)

// 列别名，按优先级排列
var (
	colDate          = []string{"Date", "Day"}
	colImpressions   = []string{"Impressions", "Impressions (total)", "Impressions (organic)", "Views"}
	colLikes         = []string{"Likes", "Reactions", "Reactions (total)", "Reactions (organic)"}
	colReplies       = []string{"Replies", "Comments", "Comments (total)", "Comments (organic)"}
	colReposts       = []string{"Reposts", "Retweets", "Reposts (total)", "Reposts (organic)", "Shares (total)"}
	colClicks        = []string{"URL Clicks", "Url clicks", "Link clicks", "Clicks", "Clicks (total)", "Clicks (organic)"}
	colShares        = []string{"Shares", "Share"}
	colBookmarks     = []string{"Bookmarks"}
	colProfileVisits = []string{"Profile visits", "Profile Visits", "User profile clicks"}
	colEngagements   = []string{"Engagements", "Engagements (total)"}
	colVideoViews    = []string{"Video views", "Media views", "Video Views"}
	colPostsCreated  = []string{"Create Post", "Posts", "Tweets", "Posts created"}
	colNewFollows    = []string{"New follows", "New followers", "Follows", "Follows (total)"}
	colUnfollows     = []string{"Unfollows"}

	colWatchViews  = []string{"Views", "Video views", "Plays"}
	colWatchTime   = []string{"Watch time (ms)", "Watch Time (ms)", "Watch time", "Total watch time (ms)"}
	colCompletion  = []string{"Completion rate", "Completion Rate", "Video completion rate"}
	colPostText    = []string{"Post text", "Tweet text", "Text", "Post title", "Title", "Post commentary"}
	colPostLink    = []string{"Post Link", "Post link", "Permalink", "Link", "Tweet permalink"}
	colPostTime    = []string{"Date", "Time", "Created at", "Created date", "Published", "Post date"}
	colPostViews   = []string{"Views", "Video views", "Media views", "Views (excluding off-site video views)"}
	colRate        = []string{"Engagement rate", "Engagement Rate"}
	colContentType = []string{"Content Type", "Content type", "Post type", "Media type"}
)

// ColumnGroup 任一别名出现即视为满足
type ColumnGroup struct {
	Name    string
	Aliases []string
}

// DatasetSpec 数据集的表头定位、日期策略与校验分组
type DatasetSpec struct {
	ID           model.DatasetID
	Label        string
	Platform     model.Platform
	HeaderLabels []string
	Date         field.DateStrategy
	Required     []ColumnGroup
	Optional     []ColumnGroup
}

// DatasetSpecs 五个逻辑数据集
var DatasetSpecs = map[model.DatasetID]DatasetSpec{
	model.DatasetXDaily: {
		ID:           model.DatasetXDaily,
		Label:        "X account overview",
		Platform:     model.PlatformX,
		HeaderLabels: []string{"Date"},
		Date:         field.GenericDate,
		Required: []ColumnGroup{
			{"date", colDate},
			{"impressions", colImpressions},
		},
		Optional: []ColumnGroup{
			{"likes", colLikes},
			{"replies", colReplies},
			{"reposts", colReposts},
			{"engagements", colEngagements},
			{"bookmarks", colBookmarks},
			{"shares", colShares},
			{"profile visits", colProfileVisits},
			{"new follows", colNewFollows},
			{"unfollows", colUnfollows},
		},
	},
	model.DatasetXVideo: {
		ID:           model.DatasetXVideo,
		Label:        "X video overview",
		Platform:     model.PlatformX,
		HeaderLabels: []string{"Date"},
		Date:         field.GenericDate,
		Required: []ColumnGroup{
			{"date", colDate},
			{"views", colWatchViews},
		},
		Optional: []ColumnGroup{
			{"watch time", colWatchTime},
			{"completion rate", colCompletion},
		},
	},
	model.DatasetXPosts: {
		ID:           model.DatasetXPosts,
		Label:        "X posts",
		Platform:     model.PlatformX,
		HeaderLabels: []string{"Post text", "Tweet text"},
		Date:         field.TimestampDate,
		Required: []ColumnGroup{
			{"post text", colPostText},
			{"impressions", colImpressions},
		},
		Optional: []ColumnGroup{
			{"post link", colPostLink},
			{"date", colPostTime},
			{"likes", colLikes},
			{"replies", colReplies},
			{"reposts", colReposts},
			{"engagement rate", colRate},
		},
	},
	model.DatasetLinkedInDaily: {
		ID:           model.DatasetLinkedInDaily,
		Label:        "LinkedIn metrics",
		Platform:     model.PlatformLinkedIn,
		HeaderLabels: []string{"Date"},
		Date:         field.PlatformDateTime,
		Required: []ColumnGroup{
			{"date", colDate},
			{"impressions", colImpressions},
		},
		Optional: []ColumnGroup{
			{"clicks", colClicks},
			{"reactions", colLikes},
			{"comments", colReplies},
			{"reposts", colReposts},
			{"engagements", colEngagements},
			{"new followers", colNewFollows},
		},
	},
	model.DatasetLinkedInPosts: {
		ID:           model.DatasetLinkedInPosts,
		Label:        "LinkedIn posts",
		Platform:     model.PlatformLinkedIn,
		HeaderLabels: []string{"Created date", "Post title"},
		Date:         field.PlatformDateTime,
		Required: []ColumnGroup{
			{"created date", colPostTime},
			{"impressions", colImpressions},
		},
		Optional: []ColumnGroup{
			{"post title", colPostText},
			{"post link", colPostLink},
			{"views", colPostViews},
			{"likes", colLikes},
			{"comments", colReplies},
			{"reposts", colReposts},
			{"engagement rate", colRate},
			{"content type", colContentType},
		},
	},
}
