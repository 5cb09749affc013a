package source

import (
	"Prism/internal/model"
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File 一个导出文件的原始文本
type File struct {
	Name    string
	Content string
}

// Bundle 一个逻辑数据集匹配到的全部文件及其来源
type Bundle struct {
	Dataset    model.DatasetID
	Provenance model.Provenance
	Files      []File
}

// Absent 未找到任何文件的数据集
func Absent(id model.DatasetID) *Bundle {
	return &Bundle{Dataset: id, Provenance: model.ProvenanceAbsent}
}

// Describe 文件名列表，用于校验报告
func (b *Bundle) Describe() string {
	if b == nil || len(b.Files) == 0 {
		return ""
	}
	names := make([]string, 0, len(b.Files))
	for _, f := range b.Files {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

// Provider 按数据集提供原始导出文件
type Provider interface {
	Load(ctx context.Context, id model.DatasetID) (*Bundle, error)
}

// DefaultPatterns 各数据集默认的文件名匹配模式
var DefaultPatterns = map[model.DatasetID]string{
	model.DatasetXDaily:        "account_overview_analytics*.csv",
	model.DatasetXVideo:        "video_overview_analytics*.csv",
	model.DatasetXPosts:        "account_analytics_content*.csv",
	model.DatasetLinkedInDaily: "linkedin_metrics*.csv",
	model.DatasetLinkedInPosts: "linkedin_posts*.csv",
}

// Pattern 配置覆盖优先，否则使用默认模式
func Pattern(overrides map[string]string, id model.DatasetID) string {
	if p := strings.TrimSpace(overrides[string(id)]); p != "" {
		return p
	}
	return DefaultPatterns[id]
}

// decode 仅接受文本内容，按 BOM 识别 UTF-8 / UTF-16 并统一转为 UTF-8
func decode(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", true
	}
	isText := false
	for m := mimetype.Detect(raw); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			isText = true
			break
		}
	}
	if !isText {
		return "", false
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", false
	}
	return string(out), true
}
