package model

// Platform 数据来源平台
type Platform string

const (
	PlatformX        Platform = "x"
	PlatformLinkedIn Platform = "linkedin"
	// PlatformAll 两个平台合并后的序列
	PlatformAll Platform = "all"
)

// DatasetID 逻辑数据集标识
type DatasetID string

const (
	DatasetXDaily        DatasetID = "x_daily"
	DatasetXVideo        DatasetID = "x_video"
	DatasetXPosts        DatasetID = "x_posts"
	DatasetLinkedInDaily DatasetID = "linkedin_daily"
	DatasetLinkedInPosts DatasetID = "linkedin_posts"
)

// AllDatasets 固定的数据集顺序，校验报告按此顺序输出
var AllDatasets = []DatasetID{
	DatasetXDaily,
	DatasetXVideo,
	DatasetXPosts,
	DatasetLinkedInDaily,
	DatasetLinkedInPosts,
}

// Provenance 数据集文件来源
type Provenance string

const (
	ProvenancePrimary Provenance = "primary"
	ProvenanceSample  Provenance = "sample"
	ProvenanceAbsent  Provenance = "absent"
)
