package rodsize

import (
	"regexp"
	"strings"

	loads "Trapeze/internal/calc/loads"
)

// Order lists the metric drop-rod sizes the sizing ladder walks, smallest
// first.
var Order = []string{"M6", "M8", "M10", "M12", "M16", "M20"}

var sizeRe = regexp.MustCompile(`M\s*(\d+)`)

// Parse extracts a normalized metric size ("M10") from a free-form catalog
// label such as "m 10 zinc". Labels without a metric size come back
// upper-cased as-is.
func Parse(label string) string {
	up := strings.ToUpper(label)
	m := sizeRe.FindStringSubmatch(up)
	if m == nil {
		return up
	}
	return "M" + m[1]
}

// Index returns the position of a size in Order, -1 for unknown sizes.
func Index(size string) int {
	for i, s := range Order {
		if s == size {
			return i
		}
	}
	return -1
}

// Required returns the smallest rod in Order whose allowable tension covers
// the per-rod share of the total hung weight, split over the given number of
// rods. When no listed capacity is sufficient the largest rod is returned
// and the caller reports the shortfall.
func Required(totalKg float64, caps map[string]float64, rods int) string {
	if rods < 1 {
		rods = 1
	}
	perRodN := totalKg * loads.Gravity / float64(rods)
	for _, r := range Order {
		if c, ok := caps[r]; ok && c > 0 && c >= perRodN {
			return r
		}
	}
	return Order[len(Order)-1]
}
