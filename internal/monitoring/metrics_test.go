package monitoring

import (
	"strings"
	"testing"
	"time"

	"campus-parking/internal/parking"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticStats []parking.ParkingSlot

func (s staticStats) Stats() parking.ParkingStats {
	return parking.ComputeStats(s)
}

func TestSlotCollectorSeed(t *testing.T) {
	c := NewSlotCollector(staticStats(parking.SeedSlots(time.Now())))

	expected := `
# HELP campus_parking_slots Current number of parking slots per status
# TYPE campus_parking_slots gauge
campus_parking_slots{status="available"} 14
campus_parking_slots{status="disabled"} 1
campus_parking_slots{status="occupied"} 6
campus_parking_slots{status="reserved"} 3
# HELP campus_parking_slots_total Total number of parking slots
# TYPE campus_parking_slots_total gauge
campus_parking_slots_total 24
# HELP campus_parking_utilization_percent Share of slots occupied or reserved
# TYPE campus_parking_utilization_percent gauge
campus_parking_utilization_percent 37.5
`

	err := testutil.CollectAndCompare(c, strings.NewReader(expected))
	require.NoError(t, err)
}

func TestSlotCollectorReadsLiveRegistry(t *testing.T) {
	registry := parking.NewSeededRegistry("current.user@university.edu")
	c := NewSlotCollector(registry)

	registry.SetStatus("10", parking.StatusAvailable)

	expected := `
# HELP campus_parking_slots_total Total number of parking slots
# TYPE campus_parking_slots_total gauge
campus_parking_slots_total 24
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "campus_parking_slots_total"))
	assert.Equal(t, 4, testutil.CollectAndCount(c, "campus_parking_slots"))
}

func TestSlotCollectorEmpty(t *testing.T) {
	c := NewSlotCollector(staticStats(nil))

	expected := `
# HELP campus_parking_utilization_percent Share of slots occupied or reserved
# TYPE campus_parking_utilization_percent gauge
campus_parking_utilization_percent 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "campus_parking_utilization_percent"))
}

func TestNewRegistryGathers(t *testing.T) {
	reg := NewRegistry(staticStats(parking.SeedSlots(time.Now())))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "campus_parking_slots")
	assert.Contains(t, names, "go_goroutines")
}
