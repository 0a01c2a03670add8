package folioview

import "fmt"

// ValueType selects which derived scalar of each sample a chart plots.
// It is purely a view selector and never mutates the underlying series.
type ValueType int

const (
	// Net plots the sample's net value verbatim.
	Net ValueType = iota
	// Absolute plots the sample's absolute value verbatim.
	Absolute
	// DailyChange plots the percent change from the previous present point
	// of the same series within the filtered sequence.
	DailyChange
	// SinceStart plots the percent change from the first present point of
	// the filtered sequence. The baseline is the first *visible* point, so
	// changing the date range re-anchors every plotted value.
	SinceStart
)

// IsPercent reports whether the value type plots a percentage.
func (vt ValueType) IsPercent() bool { return vt == DailyChange || vt == SinceStart }

func (vt ValueType) String() string {
	switch vt {
	case Net:
		return "net"
	case Absolute:
		return "absolute"
	case DailyChange:
		return "daily"
	case SinceStart:
		return "start"
	default:
		return fmt.Sprintf("ValueType(%d)", int(vt))
	}
}

// ParseValueType parses a value type from its command line name.
func ParseValueType(s string) (ValueType, error) {
	switch s {
	case "net":
		return Net, nil
	case "absolute", "abs":
		return Absolute, nil
	case "daily", "day":
		return DailyChange, nil
	case "start", "pct":
		return SinceStart, nil
	default:
		return Net, fmt.Errorf("unknown value type %q (want net, absolute, daily or start)", s)
	}
}
