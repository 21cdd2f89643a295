package sales

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

var (
	numericPrefix = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)
	gvizDate      = regexp.MustCompile(`Date\((\d+),\s*(\d+),\s*(\d+)`)
	fold          = cases.Fold()
)

// dateLayouts are tried in order for cells that are not gviz Date(...) tokens.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ToNumber coerces a spreadsheet cell into a finite float64. Currency symbols,
// thousands separators and other noise are stripped; anything unparsable is 0.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		// gviz writes large cells in exponent form, e.g. 1.0E7
		if f, err := n.Float64(); err == nil {
			return finite(f)
		}
		return parseLoose(string(n))
	case bool:
		return 0
	case string:
		return parseLoose(n)
	default:
		return parseLoose(fmt.Sprint(n))
	}
}

func parseLoose(s string) float64 {
	if s == "" {
		return 0
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			return r
		}
		return -1
	}, s)
	m := numericPrefix.FindString(cleaned)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseDate accepts a gviz token such as "Date(2024,5,1)" (zero-based month)
// or a generic date string. ok is false for anything it cannot read.
func ParseDate(v any, loc *time.Location) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if m := gvizDate.FindStringSubmatch(s); m != nil {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			return time.Date(y, time.Month(mo+1), day, 0, 0, 0, 0, loc), true
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// ParseCategories splits a comma-separated category label.
func ParseCategories(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsNewCustomerFlag reads the new-customer cell: "true", a checkmark or "1".
func IsNewCustomerFlag(v any) bool {
	var s string
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s = x
	default:
		s = fmt.Sprint(x)
	}
	switch fold.String(strings.TrimSpace(s)) {
	case "true", "✔", "✓", "1":
		return true
	}
	return false
}
