package parking

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func findMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}
	t.Fatalf("metric %s not recorded", name)
	return metricdata.Metrics{}
}

func sumInt64(t *testing.T, m metricdata.Metrics, key, value string) int64 {
	t.Helper()
	var points []metricdata.DataPoint[int64]
	switch data := m.Data.(type) {
	case metricdata.Sum[int64]:
		points = data.DataPoints
	case metricdata.Gauge[int64]:
		points = data.DataPoints
	default:
		t.Fatalf("metric %s has unexpected type %T", m.Name, m.Data)
	}

	var total int64
	for _, dp := range points {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			total += dp.Value
		}
	}
	return total
}

func newInstrumented(t *testing.T) (*InstrumentedRegistry, *TelemetryProvider) {
	t.Helper()
	telemetry := NewLocalTelemetryProvider("campus-parking-test")
	t.Cleanup(func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown telemetry: %v", err)
		}
	})

	ir, err := NewInstrumentedRegistry(newTestRegistry(time.Now()), telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented registry: %v", err)
	}
	t.Cleanup(func() { ir.Close() })
	return ir, telemetry
}

func TestInstrumentedRegistryIntegration(t *testing.T) {
	ir, telemetry := newInstrumented(t)
	ctx := context.Background()

	slot, found := ir.Book(ctx, "1", "XYZ-0001", 3, "")
	if !found || slot.Status != StatusReserved {
		t.Errorf("Expected slot 1 to be reserved, got %+v", slot)
	}

	if _, found := ir.Book(ctx, "404", "XYZ-0001", 3, ""); found {
		t.Error("Expected unknown slot to report not found")
	}

	if _, found := ir.SetStatus(ctx, "2", StatusAvailable); !found {
		t.Error("Expected slot 2 to be found")
	}

	if touched := ir.ResetAvailable(ctx); touched != 14 {
		t.Errorf("Expected 14 touched slots, got %d", touched)
	}

	if slot, ok := ir.SimulateParking(ctx); !ok || slot.ID != "2" {
		t.Errorf("Expected slot 2 to be occupied, got %+v", slot)
	}

	if got := len(ir.GetSlots(ctx)); got != 24 {
		t.Errorf("Expected 24 slots, got %d", got)
	}

	summary := ir.GetSummary(ctx)
	if summary.ReservedSlots != 4 || summary.OccupiedSlots != 6 {
		t.Errorf("Unexpected summary: %+v", summary.ParkingStats)
	}

	rm, err := telemetry.Collect(ctx)
	if err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}

	bookings := findMetric(t, rm, "slot_bookings_total")
	if got := sumInt64(t, bookings, "status", "applied"); got != 1 {
		t.Errorf("Expected 1 applied booking, got %d", got)
	}
	if got := sumInt64(t, bookings, "status", "not_found"); got != 1 {
		t.Errorf("Expected 1 not_found booking, got %d", got)
	}

	changes := findMetric(t, rm, "slot_status_changes_total")
	if got := sumInt64(t, changes, "operation", "reset_available"); got != 14 {
		t.Errorf("Expected 14 reset changes, got %d", got)
	}

	gauge := findMetric(t, rm, "parking_slots")
	if got := sumInt64(t, gauge, "status", "occupied"); got != 6 {
		t.Errorf("Expected occupied gauge 6, got %d", got)
	}
	if got := sumInt64(t, gauge, "status", "disabled"); got != 1 {
		t.Errorf("Expected disabled gauge 1, got %d", got)
	}
}

func TestCollectRequiresManualReader(t *testing.T) {
	tp := &TelemetryProvider{}
	if _, err := tp.Collect(context.Background()); err == nil {
		t.Error("Expected error without a manual reader")
	}
}
