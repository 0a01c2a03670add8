package folioview

import "iter"

// Frame is the reconciliation output handed to the chart renderer: an
// ascending, duplicate-free date axis equal to the set union of all input
// series' dates, with every series re-projected onto that axis. Dates absent
// from a given series map to a gap (zero Value), never to an interpolated or
// zero-filled number.
type Frame struct {
	days  []Date
	names []string
	cols  map[string][]Sample
}

// union returns an iterator over all unique, sorted dates from multiple
// series of sorted dates.
func union(series ...[]Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		indexes := make([]int, len(series))
		reached := make([]Date, 0, len(series))
		for {
			reached = reached[:0]
			for i, index := range indexes {
				if index < len(series[i]) {
					reached = append(reached, series[i][index])
				}
			}
			if len(reached) == 0 {
				// All series have been consumed, exit.
				return
			}
			m := reached[0]
			for _, t := range reached {
				if t.Before(m) {
					m = t
				}
			}
			// consume the min from every series that carries it
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Merge reconciles independently fetched series into a single Frame.
//
// Column order follows the argument order. A nil series (a fetch that failed
// or was discarded) contributes nothing: its column stays entirely gaps and
// its dates do not extend the axis.
func Merge(series ...*Series) *Frame {
	f := &Frame{cols: make(map[string][]Sample)}
	dates := make([][]Date, 0, len(series))
	for _, s := range series {
		if s == nil {
			continue
		}
		f.names = append(f.names, s.name)
		dates = append(dates, s.days)
	}
	for on := range union(dates...) {
		f.days = append(f.days, on)
	}
	for _, s := range series {
		if s == nil {
			continue
		}
		col := make([]Sample, len(f.days))
		for i, on := range f.days {
			if p, ok := s.Get(on); ok {
				col[i] = p
			}
		}
		f.cols[s.name] = col
	}
	return f
}

// Len returns the length of the date axis.
func (f *Frame) Len() int { return len(f.days) }

// Days returns the date axis, ascending and duplicate-free.
func (f *Frame) Days() []Date { return f.days }

// Names returns the series keys, in merge order.
func (f *Frame) Names() []string { return f.names }

// Sample returns the raw sample of the named series at the i-th axis date.
// A gap is a zero Sample.
func (f *Frame) Sample(name string, i int) Sample {
	col, ok := f.cols[name]
	if !ok || i < 0 || i >= len(col) {
		return Sample{}
	}
	return col[i]
}

// Span returns the min/max range of the axis, or false when the frame is empty.
func (f *Frame) Span() (Range, bool) {
	if len(f.days) == 0 {
		return Range{}, false
	}
	return Range{From: f.days[0], To: f.days[len(f.days)-1]}, true
}

// Filter returns a frame restricted to axis dates within r, boundaries
// included. The zero range is the identity.
func (f *Frame) Filter(r Range) *Frame {
	if r.IsZero() {
		return f
	}
	out := &Frame{names: f.names, cols: make(map[string][]Sample, len(f.cols))}
	keep := make([]int, 0, len(f.days))
	for i, on := range f.days {
		if r.Contains(on) {
			keep = append(keep, i)
			out.days = append(out.days, on)
		}
	}
	for name, col := range f.cols {
		c := make([]Sample, 0, len(keep))
		for _, i := range keep {
			c = append(c, col[i])
		}
		out.cols[name] = c
	}
	return out
}

// Column projects the named series onto the plottable scalar selected by vt,
// one entry per axis date.
//
// Percentage projections are computed over the series' own present points in
// axis order: the predecessor of a point is the previous present point, not
// the calendar-previous day. A zero or absent denominator yields a gap, never
// Inf or NaN. The first present point has no predecessor under DailyChange
// and is therefore a gap; under SinceStart it is the baseline and projects
// to zero.
func (f *Frame) Column(name string, vt ValueType) []Value {
	col, ok := f.cols[name]
	if !ok {
		return make([]Value, len(f.days))
	}
	out := make([]Value, len(col))
	switch vt {
	case Net:
		for i, p := range col {
			out[i] = p.Net
		}
	case Absolute:
		for i, p := range col {
			out[i] = p.Abs
		}
	case DailyChange:
		prev := Value{}
		for i, p := range col {
			if !p.Abs.Valid {
				continue // gap: does not consume nor update the predecessor
			}
			if prev.Valid && prev.Float != 0 {
				out[i] = Some((p.Abs.Float - prev.Float) / prev.Float * 100)
			}
			prev = p.Abs
		}
	case SinceStart:
		first := Value{}
		for i, p := range col {
			if !p.Abs.Valid {
				continue
			}
			if !first.Valid {
				first = p.Abs
			}
			if first.Float != 0 {
				out[i] = Some((p.Abs.Float - first.Float) / first.Float * 100)
			}
		}
	}
	return out
}

// Final extracts the single display scalar for a series: the projected value
// at the series' own last present point. Axis dates where the series has no
// sample are not points of the series and are skipped. It is a zero Value
// when the series is empty after filtering, or when the last point's
// projection has no defined result; the renderer shows those as the "-"
// placeholder.
func (f *Frame) Final(name string, vt ValueType) Value {
	col := f.Column(name, vt)
	raw := f.cols[name]
	for i := len(raw) - 1; i >= 0; i-- {
		if raw[i].Abs.Valid || raw[i].Net.Valid {
			return col[i]
		}
	}
	return Value{}
}

// Present returns the number of present raw points of the named series,
// so views can render an explicit "not enough data" state instead of a
// broken line when a range filter leaves zero or one point.
func (f *Frame) Present(name string) int {
	n := 0
	for _, p := range f.cols[name] {
		if p.Abs.Valid || p.Net.Valid {
			n++
		}
	}
	return n
}
