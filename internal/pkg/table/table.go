package table

import (
	"bytes"
	"encoding/csv"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidateDelimiters 导出文件常见的分隔符，按优先级排列
var candidateDelimiters = []rune{',', ';', '\t'}

// sniffLines 用于推断分隔符的最大非空行数
const sniffLines = 10

// Table 抽取后的表格
type Table struct {
	Columns []string
	Rows    []Row
}

// Len 返回记录行数
func (t Table) Len() int {
	return len(t.Rows)
}

// Empty 表头未找到或没有任何记录
func (t Table) Empty() bool {
	return len(t.Columns) == 0
}

// Row 以表头名为键的一行记录
type Row struct {
	cells  map[string]string
	folded map[string]string
}

// NewRow 由表头名到值的映射构造一行，主要用于测试和内存数据源
func NewRow(values map[string]string) Row {
	r := Row{
		cells:  make(map[string]string, len(values)),
		folded: make(map[string]string, len(values)),
	}
	for k, v := range values {
		r.set(k, v)
	}
	return r
}

func (r *Row) set(name, value string) {
	if _, exists := r.cells[name]; exists {
		return
	}
	r.cells[name] = value
	key := foldKey(name)
	if _, exists := r.folded[key]; !exists {
		r.folded[key] = value
	}
}

// Get 按别名顺序查找列值：先精确匹配全部别名，再忽略大小写匹配
func (r Row) Get(aliases ...string) (string, bool) {
	for _, a := range aliases {
		if v, ok := r.cells[a]; ok {
			return strings.TrimSpace(v), true
		}
	}
	for _, a := range aliases {
		if v, ok := r.folded[foldKey(a)]; ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// Value 同 Get，缺失列返回空串
func (r Row) Value(aliases ...string) string {
	v, _ := r.Get(aliases...)
	return v
}

// Extract 在原始分隔文本中定位包含 headerLabel 的表头行，并将其后的非空行转为记录。
// 找不到表头或解析失败时返回空表，不会 panic。
func Extract(raw string, headerLabel string) (t Table) {
	defer func() {
		if recover() != nil {
			t = Table{}
		}
	}()

	grid, ok := parseGrid(raw)
	if !ok {
		return Table{}
	}

	target := foldKey(headerLabel)
	headerIdx := -1
	for i, rec := range grid {
		for _, cell := range rec {
			if foldKey(cell) == target {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return Table{}
	}

	header := make([]string, len(grid[headerIdx]))
	for i, h := range grid[headerIdx] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, string(utf8BOM)))
	}

	rows := make([]Row, 0, len(grid)-headerIdx-1)
	for _, rec := range grid[headerIdx+1:] {
		if isBlank(rec) {
			continue
		}
		row := Row{
			cells:  make(map[string]string, len(header)),
			folded: make(map[string]string, len(header)),
		}
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row.set(h, rec[i])
			} else {
				row.set(h, "")
			}
		}
		rows = append(rows, row)
	}

	columns := make([]string, 0, len(header))
	seen := make(map[string]struct{}, len(header))
	for _, h := range header {
		if h == "" {
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		columns = append(columns, h)
	}

	return Table{Columns: columns, Rows: rows}
}

func parseGrid(raw string) ([][]string, bool) {
	b := bytes.TrimPrefix([]byte(raw), utf8BOM)
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, false
	}

	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = sniffDelimiter(b)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	grid, err := r.ReadAll()
	if err != nil {
		return nil, false
	}
	return grid, true
}

// sniffDelimiter 统计前几行中各候选分隔符出现的次数，取最多者，默认逗号
func sniffDelimiter(b []byte) rune {
	counts := make(map[rune]int, len(candidateDelimiters))
	lines := 0
	for _, line := range bytes.Split(b, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		for _, d := range candidateDelimiters {
			counts[d] += bytes.Count(line, []byte(string(d)))
		}
		lines++
		if lines >= sniffLines {
			break
		}
	}

	best := candidateDelimiters[0]
	for _, d := range candidateDelimiters[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
