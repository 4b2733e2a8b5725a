package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemperatureScale_SpansBothSeries(t *testing.T) {
	rows := []Record{
		{"outdoor_temp": -7.5, "flow_temp": 38.0},
		{"outdoor_temp": 12.0, "flow_temp": 42.5},
		{"outdoor_temp": 3.0},
	}

	got := TemperatureScale(rows)
	require.InDelta(t, -7.5, got.Min, 1e-12)
	require.InDelta(t, 42.5, got.Max, 1e-12)
}

func TestTemperatureScale_IgnoresMissingAndJunk(t *testing.T) {
	rows := []Record{
		{"outdoor_temp": nil, "flow_temp": "warm"},
		{"outdoor_temp": 5.0},
		{"flow_temp": math.NaN()},
	}

	got := TemperatureScale(rows)
	require.InDelta(t, 5.0, got.Min, 1e-12)
	require.InDelta(t, 5.0, got.Max, 1e-12)
}

func TestTemperatureScale_FallbackWhenNoValues(t *testing.T) {
	for _, rows := range [][]Record{
		nil,
		{},
		{{"outdoor_temp": nil}, {"flow_temp": "n/a"}},
	} {
		got := TemperatureScale(rows)
		require.Equal(t, DefaultTemperatureScale, got)
		require.False(t, math.IsNaN(got.Min))
		require.False(t, math.IsInf(got.Max, 0))
	}
}

func TestTemperatureScale_CustomFields(t *testing.T) {
	rows := []Record{
		{"aussentemperatur": -12.0, "vorlauftemperatur": 55.0},
		{"outdoor_temp": 99.0}, // not scanned when fields are named
	}

	got := TemperatureScale(rows, "aussentemperatur", "vorlauftemperatur")
	require.InDelta(t, -12.0, got.Min, 1e-12)
	require.InDelta(t, 55.0, got.Max, 1e-12)
}
