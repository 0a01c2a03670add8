package folioview

import (
	"iter"
	"slices"
	"sort"
)

// Value is an optional scalar. The zero Value means "no value": a gap in a
// series, a missing field in a backend point, or a projection that has no
// defined result. It is never rendered as zero or interpolated over.
type Value struct {
	Float float64
	Valid bool
}

// Some returns a present Value.
func Some(f float64) Value { return Value{Float: f, Valid: true} }

// Sample is one day's raw observation of a series: the absolute (market)
// magnitude and the magnitude net of contributions. Either may be absent.
type Sample struct {
	Abs Value
	Net Value
}

// Series is a named chronological sequence of samples.
// Dates are unique and the sequence is always kept sorted.
//
// A Series is constructed fresh from every fetch and replaced wholesale on
// the next one; it is never mutated incrementally once handed to a Frame.
type Series struct {
	name    string
	days    []Date
	samples []Sample
}

// NewSeries returns an empty series with the given stable key
// (ticker symbol, benchmark symbol, or portfolio name).
func NewSeries(name string) *Series { return &Series{name: name} }

// Name returns the series' stable key.
func (s *Series) Name() string { return s.name }

// Len returns the number of samples in the series.
func (s *Series) Len() int { return len(s.days) }

// chronological is a private implementation to keep the series sorted by date.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.samples[i], c.samples[j] = c.samples[j], c.samples[i]
}

// Append adds a sample to the series.
//
// An existing sample at that date is overwritten: the later append is assumed
// fresher (duplicate fetches resolve last-write-wins).
func (s *Series) Append(on Date, p Sample) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		s.samples[i] = p
		return s
	}
	s.days, s.samples = append(s.days, on), append(s.samples, p)
	sort.Sort(chronological{s})
	return s
}

// Get returns the sample at 'day' and true, or a zero sample and false.
func (s *Series) Get(day Date) (Sample, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.samples[i], true
	}
	return Sample{}, false
}

// Values returns an iterator over all date/sample pairs, in chronological order.
func (s *Series) Values() iter.Seq2[Date, Sample] {
	return func(yield func(Date, Sample) bool) {
		for i, on := range s.days {
			if !yield(on, s.samples[i]) {
				return
			}
		}
	}
}

// First returns the earliest date and sample, or zero values if empty.
func (s *Series) First() (Date, Sample) {
	if len(s.days) == 0 {
		return Date{}, Sample{}
	}
	return s.days[0], s.samples[0]
}

// Latest returns the latest date and sample, or zero values if empty.
func (s *Series) Latest() (Date, Sample) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, Sample{}
	}
	return s.days[last], s.samples[last]
}
