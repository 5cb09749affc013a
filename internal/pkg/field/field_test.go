package field

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestNumber(t *testing.T) {
	cases := map[string]float64{
		"":         0,
		"  ":       0,
		"1,234":    1234,
		"12 500.5": 12500.5,
		"abc":      0,
		"NaN":      0,
		"Inf":      0,
		"-3":       -3,
		"0.25":     0.25,
		"12%":      12,
		"1,5 %":    15,
	}
	for in, want := range cases {
		if got := Number(in); !almostEqual(got, want) {
			t.Errorf("Number(%q) = %v, want %v", in, got, want)
		}
	}
	if got := Count("-3"); got != 0 {
		t.Errorf("Count should clamp negatives, got %v", got)
	}
}

func TestRate(t *testing.T) {
	if Rate("") != nil {
		t.Errorf("empty rate should be nil")
	}
	if Rate("n/a") != nil {
		t.Errorf("invalid rate should be nil")
	}
	if r := Rate(" 0.042 "); r == nil || !almostEqual(*r, 0.042) {
		t.Errorf("expected 0.042, got %v", r)
	}
}

func TestEngagementRate(t *testing.T) {
	if EngagementRate(10, 5, 5, 0) != nil {
		t.Fatalf("zero impressions must yield nil rate")
	}
	r := EngagementRate(10, 5, 5, 200)
	if r == nil || !almostEqual(*r, 0.10) {
		t.Fatalf("expected 0.10, got %v", r)
	}
	fallback := RateOr("oops", r)
	if fallback != r {
		t.Errorf("invalid explicit rate should use fallback")
	}
}

func TestSerialDateMidnight(t *testing.T) {
	p := NewDateParser(PlatformDateTime, MonthFirst)
	dt, ok := p.Parse("44927")
	if !ok {
		t.Fatalf("expected serial to parse")
	}
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if !dt.Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, dt.Time)
	}
	if dt.TimeKnown {
		t.Errorf("integer serial should not carry time-of-day")
	}

	again, _ := p.Parse("44927")
	if again != dt {
		t.Errorf("parsing must be idempotent: %v vs %v", again, dt)
	}
}

func TestSerialDateFraction(t *testing.T) {
	dt, ok := FromSerial(44927.75)
	if !ok {
		t.Fatalf("expected fractional serial to parse")
	}
	if !dt.TimeKnown || dt.Time.Hour() != 18 || dt.Time.Minute() != 0 {
		t.Fatalf("expected 18:00 with known time, got %v known=%v", dt.Time, dt.TimeKnown)
	}
}

func TestSlashDateTime(t *testing.T) {
	p := NewDateParser(PlatformDateTime, MonthFirst)

	dt, ok := p.Parse("3/4/2024 12:15 AM")
	if !ok {
		t.Fatalf("expected to parse")
	}
	if dt.Time.Month() != time.March || dt.Time.Day() != 4 || dt.Time.Hour() != 0 || dt.Time.Minute() != 15 {
		t.Errorf("unexpected result %v", dt.Time)
	}

	dt, _ = p.Parse("3/4/2024 12:05 PM")
	if dt.Time.Hour() != 12 {
		t.Errorf("12 PM should stay 12, got %d", dt.Time.Hour())
	}

	dt, _ = p.Parse("3/4/24 1:30 pm")
	if dt.Time.Year() != 2024 || dt.Time.Hour() != 13 {
		t.Errorf("expected 2024 13:30, got %v", dt.Time)
	}

	dt, ok = p.Parse("3/4/2024")
	if !ok || dt.TimeKnown {
		t.Errorf("date-only input must parse without time, got %v known=%v", dt.Time, dt.TimeKnown)
	}

	dmy := NewDateParser(PlatformDateTime, DayFirst)
	dt, _ = dmy.Parse("3/4/2024")
	if dt.Time.Month() != time.April || dt.Time.Day() != 3 {
		t.Errorf("day-first order not applied: %v", dt.Time)
	}

	if _, ok := p.Parse("13/40/2024"); ok {
		t.Errorf("invalid month/day must fail")
	}
}

func TestPlatformFallsBackToGenericParse(t *testing.T) {
	p := NewDateParser(PlatformDateTime, MonthFirst)
	dt, ok := p.Parse("2024-02-10 08:30:00")
	if !ok {
		t.Fatalf("expected generic fallback to parse")
	}
	if !dt.TimeKnown || dt.Time.Hour() != 8 {
		t.Errorf("expected 08:30 known, got %v known=%v", dt.Time, dt.TimeKnown)
	}
}

func TestPlatformNumericOutsideSerialRange(t *testing.T) {
	p := NewDateParser(PlatformDateTime, MonthFirst)
	dt, ok := p.Parse("20240105")
	if !ok {
		t.Fatalf("expected compact date to fall through to generic parse")
	}
	if !dt.Day().Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", dt.Time)
	}
}

func TestFragmentsDoNotParse(t *testing.T) {
	for _, strategy := range []DateStrategy{GenericDate, PlatformDateTime, TimestampDate} {
		p := NewDateParser(strategy, MonthFirst)
		for _, in := range []string{"9/", "12:", "1/1/1/1", "1.1.1.1.1"} {
			if dt, ok := p.Parse(in); ok {
				t.Errorf("strategy %d: %q parsed as %v", strategy, in, dt.Time)
			}
		}
	}
}

func TestGenericDateTruncatesToDay(t *testing.T) {
	p := NewDateParser(GenericDate, MonthFirst)
	dt, ok := p.Parse("2024-01-15 23:59:00")
	if !ok {
		t.Fatalf("expected to parse")
	}
	if !dt.Time.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) || dt.TimeKnown {
		t.Errorf("expected UTC midnight, got %v", dt.Time)
	}
	if _, ok := p.Parse("not a date"); ok {
		t.Errorf("garbage must not parse")
	}
	if _, ok := p.Parse(""); ok {
		t.Errorf("empty must not parse")
	}
}

func TestToDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2024, 5, 2, 3, 0, 0, 0, loc)
	got := ToDay(in)
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ToDay(%v) = %v, want %v", in, got, want)
	}
}
