package tournament

import "fmt"

// Format selects the bracket-progression rules a tournament runs under.
// It is fixed for the lifetime of a Tournament.
type Format int

const (
	SingleElimination Format = iota
	DoubleElimination
	Swiss
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{SingleElimination, DoubleElimination, Swiss}
}

// ParseFormat resolves a format from its configuration name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "single-elimination", "single":
		return SingleElimination, nil
	case "double-elimination", "double":
		return DoubleElimination, nil
	case "swiss":
		return Swiss, nil
	default:
		return 0, fmt.Errorf("tournament: invalid format %q", name)
	}
}

func (f Format) String() string {
	switch f {
	case SingleElimination:
		return "single-elimination"
	case DoubleElimination:
		return "double-elimination"
	case Swiss:
		return "swiss"
	default:
		return "unknown"
	}
}
