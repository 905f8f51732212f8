// backend-go/internal/bom/units.go
package bom

import "strings"

// UnitSpec carries the unit declarations of one catalog item: its native
// stock unit and an optional secondary unit with a conversion factor meaning
// "1 native unit equals Factor units of Alt". A factor <= 0 disables the
// declared conversion.
type UnitSpec struct {
	Native string
	Alt    string
	Factor float64
}

// metricFactors covers the common case where stock and recipe both use
// metric multiples, independent of item-declared factors.
var metricFactors = map[[2]string]float64{
	{"kg", "g"}:  1000,
	{"g", "kg"}:  0.001,
	{"l", "ml"}:  1000,
	{"ml", "l"}:  0.001,
}

// Convert converts qty from one unit token to another for the given item.
// The boolean reports whether a conversion rule applied: an unconverted
// quantity is returned unchanged so resolution can proceed best-effort, and
// callers must surface the flag because unknown conversions corrupt
// downstream comparisons.
//
// Rule order: identical tokens, then the item-declared factor (both
// directions, so declared pairs round-trip), then the fixed metric table.
func Convert(spec UnitSpec, qty float64, from, to string) (float64, bool) {
	from = normalizeUnit(from)
	to = normalizeUnit(to)

	if from == to {
		return qty, true
	}

	if spec.Factor > 0 && spec.Alt != "" {
		native := normalizeUnit(spec.Native)
		alt := normalizeUnit(spec.Alt)
		if from == native && to == alt {
			return qty * spec.Factor, true
		}
		if from == alt && to == native {
			return qty / spec.Factor, true
		}
	}

	if factor, ok := metricFactors[[2]string{from, to}]; ok {
		return qty * factor, true
	}

	return qty, false
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
