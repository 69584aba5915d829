package field

import (
	"fmt"
	"strconv"
	"strings"
)

// GridSize sizes the field at one breakpoint. Positive values are column spans
// out of GridColumns.
type GridSize int

const (
	GridUnset  GridSize = 0
	GridHidden GridSize = -1
	GridGrow   GridSize = -2
	GridAuto   GridSize = -3
)

// GridColumns is the width of the layout grid.
const GridColumns = 12

// Columns returns a span clamped to 1..GridColumns.
func Columns(n int) GridSize {
	switch {
	case n < 1:
		return 1
	case n > GridColumns:
		return GridColumns
	default:
		return GridSize(n)
	}
}

func (g GridSize) token() string {
	switch {
	case g == GridHidden:
		return "hidden"
	case g == GridGrow:
		return "grow"
	case g == GridAuto:
		return "auto"
	case g > 0:
		return strconv.Itoa(int(g))
	default:
		return ""
	}
}

// ParseGridSize accepts the loose values found in definition files: booleans,
// "auto", integers and numeric strings.
func ParseGridSize(value any) (GridSize, error) {
	switch v := value.(type) {
	case nil:
		return GridUnset, nil
	case GridSize:
		return v, nil
	case bool:
		if v {
			return GridGrow, nil
		}
		return GridHidden, nil
	case int:
		return parseGridInt(v)
	case int64:
		return parseGridInt(int(v))
	case float64:
		if v != float64(int(v)) {
			return GridUnset, fmt.Errorf("field: grid size %v is not a whole number", v)
		}
		return parseGridInt(int(v))
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(v))
		switch trimmed {
		case "":
			return GridUnset, nil
		case "auto":
			return GridAuto, nil
		case "true", "grow":
			return GridGrow, nil
		case "false", "hidden":
			return GridHidden, nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return GridUnset, fmt.Errorf("field: invalid grid size %q", v)
		}
		return parseGridInt(n)
	default:
		return GridUnset, fmt.Errorf("field: unsupported grid size type %T", value)
	}
}

func parseGridInt(n int) (GridSize, error) {
	if n < 1 || n > GridColumns {
		return GridUnset, fmt.Errorf("field: grid size %d outside 1..%d", n, GridColumns)
	}
	return GridSize(n), nil
}

// Layout carries one optional size per breakpoint. It is passed verbatim to
// renderers.
type Layout struct {
	XS GridSize
	SM GridSize
	MD GridSize
	LG GridSize
	XL GridSize
}

// Breakpoint pairs a breakpoint name with its size.
type Breakpoint struct {
	Name string
	Size GridSize
}

// Breakpoints lists the set breakpoints from smallest to largest.
func (l Layout) Breakpoints() []Breakpoint {
	all := []Breakpoint{
		{Name: "xs", Size: l.XS},
		{Name: "sm", Size: l.SM},
		{Name: "md", Size: l.MD},
		{Name: "lg", Size: l.LG},
		{Name: "xl", Size: l.XL},
	}
	out := all[:0]
	for _, bp := range all {
		if bp.Size.token() != "" {
			out = append(out, bp)
		}
	}
	return out
}

// Classes returns class tokens such as "fg-col-md-6" for every set breakpoint.
func (l Layout) Classes() []string {
	bps := l.Breakpoints()
	if len(bps) == 0 {
		return nil
	}
	out := make([]string, 0, len(bps))
	for _, bp := range bps {
		out = append(out, "fg-col-"+bp.Name+"-"+bp.Size.token())
	}
	return out
}

// IsZero reports whether no breakpoint is set.
func (l Layout) IsZero() bool {
	return l == Layout{}
}
