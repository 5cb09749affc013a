package source

import (
	"Prism/internal/model"
	"context"
	"io/fs"
	log "log/slog"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// LocalProvider 从目录读取导出文件：主目录无匹配时退回样例目录
type LocalProvider struct {
	primary  fs.FS
	sample   fs.FS
	patterns map[string]string
}

// NewLocalProvider 目录为空串时跳过该层
func NewLocalProvider(dataDir, sampleDir string, patterns map[string]string) *LocalProvider {
	p := &LocalProvider{patterns: patterns}
	if dataDir != "" {
		p.primary = os.DirFS(dataDir)
	}
	if sampleDir != "" {
		p.sample = os.DirFS(sampleDir)
	}
	return p
}

// NewFSProvider 基于任意文件系统，供内嵌样例与测试使用
func NewFSProvider(primary, sample fs.FS, patterns map[string]string) *LocalProvider {
	return &LocalProvider{primary: primary, sample: sample, patterns: patterns}
}

func (p *LocalProvider) Load(ctx context.Context, id model.DatasetID) (*Bundle, error) {
	pattern := Pattern(p.patterns, id)
	if pattern == "" {
		return Absent(id), nil
	}

	layers := []struct {
		fsys       fs.FS
		provenance model.Provenance
	}{
		{p.primary, model.ProvenancePrimary},
		{p.sample, model.ProvenanceSample},
	}
	for _, layer := range layers {
		if layer.fsys == nil {
			continue
		}
		files, err := readMatches(ctx, layer.fsys, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", id)
		}
		if len(files) > 0 {
			return &Bundle{Dataset: id, Provenance: layer.provenance, Files: files}, nil
		}
	}
	return Absent(id), nil
}

func readMatches(ctx context.Context, fsys fs.FS, pattern string) ([]File, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "glob %q", pattern)
	}
	sort.Strings(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if info, err := fs.Stat(fsys, name); err == nil && info.IsDir() {
			continue
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		content, ok := decode(raw)
		if !ok {
			log.WarnContext(ctx, "skip non-text export", "file", name)
			continue
		}
		files = append(files, File{Name: name, Content: content})
	}
	return files, nil
}
