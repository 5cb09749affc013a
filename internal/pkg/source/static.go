package source

import (
	"Prism/internal/model"
	"context"
	"embed"
	"io/fs"
)

//go:embed demo/*.csv
var demoFS embed.FS

// StaticProvider 内存数据源
type StaticProvider struct {
	bundles map[model.DatasetID]*Bundle
}

func NewStaticProvider(bundles ...*Bundle) *StaticProvider {
	p := &StaticProvider{bundles: make(map[model.DatasetID]*Bundle, len(bundles))}
	for _, b := range bundles {
		p.bundles[b.Dataset] = b
	}
	return p
}

func (p *StaticProvider) Load(_ context.Context, id model.DatasetID) (*Bundle, error) {
	b, ok := p.bundles[id]
	if !ok || len(b.Files) == 0 {
		return Absent(id), nil
	}
	cp := *b
	cp.Files = append([]File(nil), b.Files...)
	return &cp, nil
}

// DemoProvider 内嵌的样例导出，全部标记为样例来源
func DemoProvider() *LocalProvider {
	sub, err := fs.Sub(demoFS, "demo")
	if err != nil {
		panic(err)
	}
	return NewFSProvider(nil, sub, nil)
}
