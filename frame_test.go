package folioview

import "testing"

// mkSeries builds a series of absolute values from date/value pairs.
func mkSeries(name string, points map[string]float64) *Series {
	s := NewSeries(name)
	for d, v := range points {
		s.Append(MustParseDate(d), Sample{Abs: Some(v), Net: Some(v)})
	}
	return s
}

func TestMergeAxisUnion(t *testing.T) {
	portfolio := mkSeries("portfolio", map[string]float64{
		"2024-01-01": 1000,
		"2024-02-01": 1100,
	})
	ticker := mkSeries("AAPL", map[string]float64{
		"2024-01-15": 50,
	})

	f := Merge(portfolio, ticker)

	want := []string{"2024-01-01", "2024-01-15", "2024-02-01"}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d want %d", f.Len(), len(want))
	}
	for i, on := range f.Days() {
		if on.String() != want[i] {
			t.Errorf("Days()[%d] = %v want %v", i, on, want[i])
		}
	}

	// Every original point is retrievable unchanged at its date.
	if got := f.Sample("portfolio", 0); !got.Abs.Valid || got.Abs.Float != 1000 {
		t.Errorf("portfolio@01-01 = %+v want 1000", got.Abs)
	}
	if got := f.Sample("AAPL", 1); !got.Abs.Valid || got.Abs.Float != 50 {
		t.Errorf("AAPL@01-15 = %+v want 50", got.Abs)
	}

	// No interpolation: dates absent from a series are gaps, never zero.
	if got := f.Sample("portfolio", 1); got.Abs.Valid {
		t.Errorf("portfolio@01-15 = %v want gap", got.Abs.Float)
	}
	for _, i := range []int{0, 2} {
		if got := f.Sample("AAPL", i); got.Abs.Valid {
			t.Errorf("AAPL@%v = %v want gap", f.Days()[i], got.Abs.Float)
		}
	}
}

func TestMergeNilSeries(t *testing.T) {
	s := mkSeries("AAPL", map[string]float64{"2024-01-01": 1})
	f := Merge(nil, s)
	if f.Len() != 1 {
		t.Errorf("Len() = %d want 1", f.Len())
	}
	if len(f.Names()) != 1 || f.Names()[0] != "AAPL" {
		t.Errorf("Names() = %v want [AAPL]", f.Names())
	}
}

func TestColumnVerbatim(t *testing.T) {
	s := NewSeries("p")
	s.Append(MustParseDate("2024-01-01"), Sample{Abs: Some(10), Net: Some(3)})
	s.Append(MustParseDate("2024-01-02"), Sample{Abs: Some(20)}) // no net value

	f := Merge(s)
	abs := f.Column("p", Absolute)
	if abs[0].Float != 10 || abs[1].Float != 20 {
		t.Errorf("Absolute column = %v want [10 20]", abs)
	}
	net := f.Column("p", Net)
	if !net[0].Valid || net[0].Float != 3 {
		t.Errorf("Net[0] = %+v want 3", net[0])
	}
	if net[1].Valid {
		t.Errorf("Net[1] = %v want gap (absent field stays absent)", net[1].Float)
	}
}

func TestDailyChangeFirstPointIsGap(t *testing.T) {
	s := mkSeries("p", map[string]float64{
		"2024-01-01": 100,
		"2024-01-02": 110,
		"2024-01-03": 99,
	})
	f := Merge(s)
	col := f.Column("p", DailyChange)
	if col[0].Valid {
		t.Errorf("first point = %v want gap", col[0].Float)
	}
	if !col[1].Valid || !Percent(col[1].Float).Equal(10) {
		t.Errorf("col[1] = %+v want 10%%", col[1])
	}
	if !col[2].Valid || !Percent(col[2].Float).Equal(-10) {
		t.Errorf("col[2] = %+v want -10%%", col[2])
	}
}

func TestDailyChangeSkipsGaps(t *testing.T) {
	// The predecessor is the previous present point of the series in the
	// filtered sequence, not the calendar-previous axis date.
	p := mkSeries("p", map[string]float64{
		"2024-01-01": 100,
		"2024-01-03": 110,
	})
	other := mkSeries("q", map[string]float64{"2024-01-02": 1})
	f := Merge(p, other)

	col := f.Column("p", DailyChange)
	if col[1].Valid {
		t.Errorf("gap date = %+v want gap", col[1])
	}
	if !col[2].Valid || !Percent(col[2].Float).Equal(10) {
		t.Errorf("col[2] = %+v want 10%% (vs previous present point)", col[2])
	}
}

func TestDailyChangeDivisionGuard(t *testing.T) {
	s := mkSeries("p", map[string]float64{
		"2024-01-01": 0,
		"2024-01-02": 50,
	})
	f := Merge(s)
	col := f.Column("p", DailyChange)
	if col[1].Valid {
		t.Errorf("zero predecessor = %+v want gap, not Inf/NaN", col[1])
	}
}

func TestSinceStartBaselineShift(t *testing.T) {
	s := mkSeries("p", map[string]float64{
		"2024-01-01": 100,
		"2024-01-02": 110,
		"2024-01-03": 121,
	})
	f := Merge(s)

	col := f.Column("p", SinceStart)
	if !col[0].Valid || !Percent(col[0].Float).Equal(0) {
		t.Errorf("baseline point = %+v want 0%%", col[0])
	}
	if !Percent(col[2].Float).Equal(21) {
		t.Errorf("unfiltered col[2] = %v want 21%%", col[2].Float)
	}

	// Filtering re-anchors the baseline to the first visible point.
	g := f.Filter(NewRange(MustParseDate("2024-01-02"), MustParseDate("2024-01-03")))
	col = g.Column("p", SinceStart)
	if len(col) != 2 {
		t.Fatalf("filtered length = %d want 2", len(col))
	}
	if !Percent(col[1].Float).Equal(10) {
		t.Errorf("filtered col[1] = %v want 10%% (baseline re-anchored)", col[1].Float)
	}
}

func TestFilterFullSpanRoundTrip(t *testing.T) {
	s := mkSeries("p", map[string]float64{
		"2024-01-01": 1,
		"2024-03-01": 2,
		"2024-06-01": 3,
	})
	f := Merge(s)
	span, ok := f.Span()
	if !ok {
		t.Fatal("Span() on non-empty frame = _, false")
	}
	g := f.Filter(span)
	if g.Len() != f.Len() {
		t.Fatalf("full-span filter Len() = %d want %d", g.Len(), f.Len())
	}
	for i := range f.Days() {
		if f.Days()[i] != g.Days()[i] {
			t.Errorf("Days()[%d] = %v want %v", i, g.Days()[i], f.Days()[i])
		}
		if f.Sample("p", i) != g.Sample("p", i) {
			t.Errorf("Sample(p, %d) differs after full-span filter", i)
		}
	}
}

func TestFilterZeroRangeIsIdentity(t *testing.T) {
	s := mkSeries("p", map[string]float64{"2024-01-01": 1})
	f := Merge(s)
	if g := f.Filter(Range{}); g != f {
		t.Errorf("Filter(zero) = %p want identity %p", g, f)
	}
}

func TestNotEnoughDataAfterFilter(t *testing.T) {
	s := mkSeries("p", map[string]float64{
		"2024-01-01": 100,
		"2024-06-01": 110,
	})
	f := Merge(s).Filter(NewRange(MustParseDate("2024-05-01"), MustParseDate("2024-07-01")))

	if got := f.Present("p"); got != 1 {
		t.Fatalf("Present() = %d want 1", got)
	}
	for i, v := range f.Column("p", DailyChange) {
		if v.Valid {
			t.Errorf("DailyChange[%d] = %+v want gap (single point has no predecessor)", i, v)
		}
	}
}

func TestFinal(t *testing.T) {
	p := mkSeries("p", map[string]float64{
		"2024-01-01": 100,
		"2024-01-02": 110,
	})
	q := mkSeries("q", map[string]float64{"2024-01-03": 5})
	f := Merge(p, q)

	if got := f.Final("p", Absolute); !got.Valid || got.Float != 110 {
		t.Errorf("Final(p, Absolute) = %+v want 110 (series' own last point)", got)
	}
	if got := f.Final("p", SinceStart); !got.Valid || !Percent(got.Float).Equal(10) {
		t.Errorf("Final(p, SinceStart) = %+v want 10%%", got)
	}

	// Empty after filtering: the summary is the no-value placeholder.
	empty := f.Filter(NewRange(MustParseDate("2025-01-01"), MustParseDate("2025-02-01")))
	if got := empty.Final("p", Absolute); got.Valid {
		t.Errorf("Final on empty frame = %+v want no value", got)
	}
}
