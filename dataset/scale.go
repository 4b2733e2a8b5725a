package dataset

import "math"

// Scale bounds a secondary chart axis.
type Scale struct {
	Min float64
	Max float64
}

// DefaultTemperatureFields are the temperature series scanned by
// TemperatureScale when the caller names none.
var DefaultTemperatureFields = []string{"outdoor_temp", "flow_temp"}

// DefaultTemperatureScale is returned when the rows carry no numeric
// temperature values at all.
var DefaultTemperatureScale = Scale{Min: -20, Max: 60}

// TemperatureScale scans rows for temperature fields and returns the range
// spanning every numeric value across all of them, used to size a secondary
// chart axis. Missing and non-numeric values are ignored. The result is never
// NaN or infinite: with no usable values DefaultTemperatureScale is returned.
func TemperatureScale(rows []Record, fields ...string) Scale {
	if len(fields) == 0 {
		fields = DefaultTemperatureFields
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)
	found := false

	for _, row := range rows {
		for _, field := range fields {
			v, ok := row.Float(field)
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			found = true
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if !found {
		return DefaultTemperatureScale
	}

	return Scale{Min: lo, Max: hi}
}
