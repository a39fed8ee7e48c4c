package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type InstrumentedRegistry struct {
	*Registry
	telemetry *TelemetryProvider

	bookingOperations metric.Int64Counter
	statusChanges     metric.Int64Counter
	operationDuration metric.Float64Histogram
	registration      metric.Registration
}

func NewInstrumentedRegistry(registry *Registry, telemetry *TelemetryProvider) (*InstrumentedRegistry, error) {
	meter := telemetry.Meter()

	bookingOperations, err := meter.Int64Counter("slot_bookings_total",
		metric.WithDescription("Total number of slot booking requests"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	statusChanges, err := meter.Int64Counter("slot_status_changes_total",
		metric.WithDescription("Total number of slot status changes"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("registry_operation_duration_seconds",
		metric.WithDescription("Duration of slot registry operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	slotsGauge, err := meter.Int64ObservableGauge("parking_slots",
		metric.WithDescription("Current number of parking slots per status"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	utilizationGauge, err := meter.Float64ObservableGauge("parking_utilization_rate",
		metric.WithDescription("Share of slots occupied or reserved"),
		metric.WithUnit("%"))
	if err != nil {
		return nil, err
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := registry.Stats()
		disabled := stats.TotalSlots - stats.AvailableSlots - stats.OccupiedSlots - stats.ReservedSlots

		o.ObserveInt64(slotsGauge, int64(stats.AvailableSlots), metric.WithAttributes(attribute.String("status", string(StatusAvailable))))
		o.ObserveInt64(slotsGauge, int64(stats.OccupiedSlots), metric.WithAttributes(attribute.String("status", string(StatusOccupied))))
		o.ObserveInt64(slotsGauge, int64(stats.ReservedSlots), metric.WithAttributes(attribute.String("status", string(StatusReserved))))
		o.ObserveInt64(slotsGauge, int64(disabled), metric.WithAttributes(attribute.String("status", string(StatusDisabled))))
		o.ObserveFloat64(utilizationGauge, stats.UtilizationRate)
		return nil
	}, slotsGauge, utilizationGauge)
	if err != nil {
		return nil, err
	}

	return &InstrumentedRegistry{
		Registry:          registry,
		telemetry:         telemetry,
		bookingOperations: bookingOperations,
		statusChanges:     statusChanges,
		operationDuration: operationDuration,
		registration:      registration,
	}, nil
}

func (ir *InstrumentedRegistry) Close() error {
	return ir.registration.Unregister()
}

func (ir *InstrumentedRegistry) Book(ctx context.Context, slotID, vehicleNumber string, durationHours int, reservedBy string) (ParkingSlot, bool) {
	ctx, span := ir.telemetry.Tracer().Start(ctx, "registry.book",
		trace.WithAttributes(
			attribute.String("slot.id", slotID),
			attribute.String("vehicle.number", vehicleNumber),
			attribute.Int("booking.duration_hours", durationHours),
		))
	defer span.End()

	start := time.Now()

	slot, found := ir.Registry.Book(slotID, vehicleNumber, durationHours, reservedBy)

	labels := []attribute.KeyValue{attribute.String("operation", "book")}

	if found {
		span.SetAttributes(
			attribute.String("slot.number", slot.SlotNumber),
			attribute.String("slot.reserved_by", slot.ReservedBy.String),
		)
		span.AddEvent("slot_reserved", trace.WithAttributes(
			attribute.String("reserved_until", slot.ReservedUntil.Time.Format(time.RFC3339)),
		))
		labels = append(labels, attribute.String("status", "applied"))
	} else {
		span.AddEvent("slot_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	}

	ir.bookingOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ir.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return slot, found
}

func (ir *InstrumentedRegistry) SetStatus(ctx context.Context, slotID string, status SlotStatus) (ParkingSlot, bool) {
	ctx, span := ir.telemetry.Tracer().Start(ctx, "registry.set_status",
		trace.WithAttributes(
			attribute.String("slot.id", slotID),
			attribute.String("slot.new_status", string(status)),
		))
	defer span.End()

	start := time.Now()

	var previous SlotStatus
	if before, ok := ir.Registry.Slot(slotID); ok {
		previous = before.Status
		span.SetAttributes(attribute.String("slot.previous_status", string(previous)))
	}

	slot, found := ir.Registry.SetStatus(slotID, status)

	labels := []attribute.KeyValue{
		attribute.String("operation", "set_status"),
		attribute.String("to", string(status)),
	}

	if found {
		span.AddEvent("status_changed")
		labels = append(labels,
			attribute.String("status", "applied"),
			attribute.String("from", string(previous)),
		)
	} else {
		span.AddEvent("slot_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	}

	ir.statusChanges.Add(ctx, 1, metric.WithAttributes(labels...))
	ir.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return slot, found
}

func (ir *InstrumentedRegistry) ResetAvailable(ctx context.Context) int {
	ctx, span := ir.telemetry.Tracer().Start(ctx, "registry.reset_available")
	defer span.End()

	start := time.Now()

	touched := ir.Registry.ResetAvailable()

	span.SetAttributes(attribute.Int("slots.touched", touched))

	labels := []attribute.KeyValue{
		attribute.String("operation", "reset_available"),
		attribute.String("status", "applied"),
	}
	ir.statusChanges.Add(ctx, int64(touched), metric.WithAttributes(labels...))
	ir.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return touched
}

func (ir *InstrumentedRegistry) SimulateParking(ctx context.Context) (ParkingSlot, bool) {
	ctx, span := ir.telemetry.Tracer().Start(ctx, "registry.simulate_parking")
	defer span.End()

	start := time.Now()

	slot, ok := ir.Registry.SimulateParking()

	labels := []attribute.KeyValue{attribute.String("operation", "simulate_parking")}

	if ok {
		span.SetAttributes(attribute.String("slot.id", slot.ID))
		span.AddEvent("slot_occupied")
		labels = append(labels, attribute.String("status", "applied"))
		ir.statusChanges.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", "simulate_parking"),
			attribute.String("status", "applied"),
			attribute.String("from", string(StatusAvailable)),
			attribute.String("to", string(StatusOccupied)),
		))
	} else {
		span.SetStatus(codes.Error, "no available slot")
		labels = append(labels, attribute.String("status", "no_available_slot"))
	}

	ir.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return slot, ok
}

func (ir *InstrumentedRegistry) GetSlots(ctx context.Context) []ParkingSlot {
	_, span := ir.telemetry.Tracer().Start(ctx, "registry.get_slots")
	defer span.End()

	slots := ir.Registry.Slots()
	span.SetAttributes(attribute.Int("slots.count", len(slots)))
	return slots
}

func (ir *InstrumentedRegistry) GetSummary(ctx context.Context) DashboardSummary {
	_, span := ir.telemetry.Tracer().Start(ctx, "registry.get_summary")
	defer span.End()

	summary := ir.Registry.Summary()
	span.SetAttributes(
		attribute.Int("slots.total", summary.TotalSlots),
		attribute.Float64("slots.utilization_rate", summary.UtilizationRate),
	)
	return summary
}
