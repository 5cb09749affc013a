package table

import (
	"testing"
)

func TestExtractFindsHeaderAfterPreamble(t *testing.T) {
	raw := "\xEF\xBB\xBFAccount overview,,\nExported 2024-02-01,,\n\nDate,Impressions,Likes\n2024-01-01,\"1,200\",5\n,,\n2024-01-02,300\n"
	tbl := Extract(raw, "date")

	if len(tbl.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %v", tbl.Columns)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows (blank row skipped), got %d", tbl.Len())
	}
	if v := tbl.Rows[0].Value("Impressions"); v != "1,200" {
		t.Errorf("expected quoted value 1,200, got %q", v)
	}
	if v, ok := tbl.Rows[1].Get("Likes"); !ok || v != "" {
		t.Errorf("expected missing cell to default to empty string, got %q ok=%v", v, ok)
	}
}

func TestExtractIgnoresExtraCells(t *testing.T) {
	tbl := Extract("Date,Views\n2024-01-01,10,99,100\n", "Date")
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", tbl.Len())
	}
	if v := tbl.Rows[0].Value("Views"); v != "10" {
		t.Errorf("expected 10, got %q", v)
	}
}

func TestExtractNoHeaderReturnsEmpty(t *testing.T) {
	tbl := Extract("foo,bar\n1,2\n", "Date")
	if !tbl.Empty() || tbl.Len() != 0 {
		t.Fatalf("expected empty table, got %+v", tbl)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	tbl := Extract("   \n\n", "Date")
	if !tbl.Empty() {
		t.Fatalf("expected empty table for blank input")
	}
}

func TestExtractSemicolonDelimiter(t *testing.T) {
	tbl := Extract("Date;Impressions\n01/02/2024;15\n", "Date")
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", tbl.Len())
	}
	if v := tbl.Rows[0].Value("Impressions"); v != "15" {
		t.Errorf("expected 15, got %q", v)
	}
}

func TestRowGetAliasPriority(t *testing.T) {
	row := NewRow(map[string]string{
		"retweets": "7",
		"Reposts":  "3",
	})
	if v := row.Value("Reposts", "Retweets"); v != "3" {
		t.Errorf("exact alias should win, got %q", v)
	}
	if v := row.Value("Retweets"); v != "7" {
		t.Errorf("case-insensitive fallback failed, got %q", v)
	}
	if _, ok := row.Get("Shares"); ok {
		t.Errorf("expected missing column to report ok=false")
	}
}
