package source

import (
	"Prism/internal/model"
	"context"
	"io"
	log "log/slog"
	"path"
	"sort"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const (
	primaryDir = "primary"
	sampleDir  = "sample"
)

// MinioProvider 从对象存储读取导出文件，目录约定为 <prefix>/primary/ 与 <prefix>/sample/
type MinioProvider struct {
	client   *minio.Client
	bucket   string
	prefix   string
	patterns map[string]string
}

func NewMinioProvider(client *minio.Client, bucket, prefix string, patterns map[string]string) *MinioProvider {
	return &MinioProvider{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		patterns: patterns,
	}
}

func (p *MinioProvider) Load(ctx context.Context, id model.DatasetID) (*Bundle, error) {
	pattern := Pattern(p.patterns, id)
	if pattern == "" {
		return Absent(id), nil
	}

	layers := []struct {
		dir        string
		provenance model.Provenance
	}{
		{primaryDir, model.ProvenancePrimary},
		{sampleDir, model.ProvenanceSample},
	}
	for _, layer := range layers {
		keys, err := p.match(ctx, path.Join(p.prefix, layer.dir)+"/", pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", id)
		}
		if len(keys) == 0 {
			continue
		}

		files := make([]File, 0, len(keys))
		for _, key := range keys {
			raw, err := p.read(ctx, key)
			if err != nil {
				return nil, errors.Wrapf(err, "load %s", id)
			}
			content, ok := decode(raw)
			if !ok {
				log.WarnContext(ctx, "skip non-text export", "object", key)
				continue
			}
			files = append(files, File{Name: path.Base(key), Content: content})
		}
		if len(files) > 0 {
			return &Bundle{Dataset: id, Provenance: layer.provenance, Files: files}, nil
		}
	}
	return Absent(id), nil
}

func (p *MinioProvider) match(ctx context.Context, prefix, pattern string) ([]string, error) {
	var keys []string
	for obj := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if ok, _ := path.Match(pattern, path.Base(obj.Key)); ok {
			keys = append(keys, obj.Key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (p *MinioProvider) read(ctx context.Context, key string) ([]byte, error) {
	obj, err := p.client.GetObject(ctx, p.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return raw, nil
}
