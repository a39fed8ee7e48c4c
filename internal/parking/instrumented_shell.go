package parking

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const shellHelp = `Commands:
  status                               list every slot
  stats                                dashboard summary
  grouped                              slots by floor and zone
  search <term>                        filter by slot number, zone or vehicle
  book <slot_id> <vehicle> [hours]     reserve a slot
  set_status <slot_id> <status>        available | occupied | reserved | disabled
  reset                                refresh every available slot
  simulate                             occupy the first available slot
  bookings                             recent bookings
  active_bookings                      active bookings
  help                                 this text`

type InstrumentedShell struct {
	registry            *InstrumentedRegistry
	telemetry           *TelemetryProvider
	scanner             *bufio.Scanner
	out                 io.Writer
	activeBookingsLimit int
}

func NewInstrumentedShell(registry *InstrumentedRegistry, telemetry *TelemetryProvider, in io.Reader, out io.Writer, activeBookingsLimit int) *InstrumentedShell {
	return &InstrumentedShell{
		registry:            registry,
		telemetry:           telemetry,
		scanner:             bufio.NewScanner(in),
		out:                 out,
		activeBookingsLimit: activeBookingsLimit,
	}
}

func (s *InstrumentedShell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for ctx.Err() == nil && s.scanner.Scan() {
		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))

		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *InstrumentedShell) processCommand(ctx context.Context, input string) {
	span := trace.SpanFromContext(ctx)

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := parts[0]
	span.SetAttributes(attribute.String("command.name", command))

	switch command {
	case "status":
		s.handleStatus(ctx)
	case "stats":
		s.handleStats(ctx)
	case "grouped":
		s.handleGrouped(ctx)
	case "search":
		s.handleSearch(ctx, parts)
	case "book":
		s.handleBook(ctx, parts)
	case "set_status":
		s.handleSetStatus(ctx, parts)
	case "reset":
		s.handleReset(ctx)
	case "simulate":
		s.handleSimulate(ctx)
	case "bookings":
		s.printBookings(s.registry.Bookings())
	case "active_bookings":
		s.printBookings(s.registry.ActiveBookings(s.activeBookingsLimit))
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	default:
		span.AddEvent("unknown_command", trace.WithAttributes(
			attribute.String("unknown_command", command),
		))
		fmt.Fprintf(s.out, "Unknown command: %s\n", command)
	}
}

func (s *InstrumentedShell) handleStatus(ctx context.Context) {
	s.printSlots(s.registry.GetSlots(ctx))
}

func (s *InstrumentedShell) handleStats(ctx context.Context) {
	summary := s.registry.GetSummary(ctx)

	fmt.Fprintf(s.out, "Total: %d\tAvailable: %d\tOccupied: %d\tReserved: %d\n",
		summary.TotalSlots, summary.AvailableSlots, summary.OccupiedSlots, summary.ReservedSlots)
	fmt.Fprintf(s.out, "Utilization: %.1f%%\tAvailability: %.1f%%\tEst. daily revenue: %s\n",
		summary.UtilizationRate, summary.AvailabilityRate, summary.EstimatedDailyRevenue.StringFixed(2))
}

func (s *InstrumentedShell) handleGrouped(ctx context.Context) {
	for _, floor := range GroupByFloor(s.registry.GetSlots(ctx)) {
		fmt.Fprintf(s.out, "Floor %d\n", floor.Floor)
		for _, zone := range floor.Zones {
			labels := make([]string, 0, len(zone.Slots))
			for _, slot := range zone.Slots {
				labels = append(labels, fmt.Sprintf("%s(%s)", slot.SlotNumber, slot.Status))
			}
			fmt.Fprintf(s.out, "  Zone %s: %s\n", zone.Zone, strings.Join(labels, " "))
		}
	}
}

func (s *InstrumentedShell) handleSearch(ctx context.Context, parts []string) {
	span := trace.SpanFromContext(ctx)

	if len(parts) != 2 {
		span.AddEvent("invalid_arguments")
		fmt.Fprintln(s.out, "Usage: search <term>")
		return
	}

	found := Search(s.registry.GetSlots(ctx), parts[1], ScopeAdmin)
	span.SetAttributes(attribute.Int("search.matches", len(found)))

	if len(found) == 0 {
		fmt.Fprintln(s.out, "No slots found")
		return
	}
	s.printSlots(found)
}

func (s *InstrumentedShell) handleBook(ctx context.Context, parts []string) {
	span := trace.SpanFromContext(ctx)

	if len(parts) < 3 || len(parts) > 4 {
		span.AddEvent("invalid_arguments")
		fmt.Fprintln(s.out, "Usage: book <slot_id> <vehicle_number> [hours]")
		return
	}

	slotID := parts[1]
	vehicleNumber := NormalizeVehicleNumber(parts[2])

	hours := DefaultDurationHours
	if len(parts) == 4 {
		// Non-numeric input behaves like a missing duration.
		if h, err := strconv.Atoi(parts[3]); err == nil {
			hours = h
		}
	}
	hours = NormalizeDuration(hours)

	slot, found := s.registry.Book(ctx, slotID, vehicleNumber, hours, "")
	if !found {
		span.AddEvent("slot_not_found")
		return
	}

	fmt.Fprintf(s.out, "Slot %s has been reserved for %d hours (until %s)\n",
		slot.SlotNumber, hours, slot.ReservedUntil.Time.Format(time.Kitchen))
}

func (s *InstrumentedShell) handleSetStatus(ctx context.Context, parts []string) {
	span := trace.SpanFromContext(ctx)

	if len(parts) != 3 {
		span.AddEvent("invalid_arguments")
		fmt.Fprintln(s.out, "Usage: set_status <slot_id> <status>")
		return
	}

	status, err := ParseSlotStatus(parts[2])
	if err != nil {
		span.RecordError(err)
		fmt.Fprintln(s.out, "Status must be one of: available, occupied, reserved, disabled")
		return
	}

	if _, found := s.registry.SetStatus(ctx, parts[1], status); !found {
		span.AddEvent("slot_not_found")
		return
	}

	fmt.Fprintf(s.out, "Slot status has been updated to %s\n", status)
}

func (s *InstrumentedShell) handleReset(ctx context.Context) {
	touched := s.registry.ResetAvailable(ctx)
	fmt.Fprintf(s.out, "Updated %d slots to available\n", touched)
}

func (s *InstrumentedShell) handleSimulate(ctx context.Context) {
	slot, ok := s.registry.SimulateParking(ctx)
	if !ok {
		fmt.Fprintln(s.out, "No available slot to occupy")
		return
	}
	fmt.Fprintf(s.out, "Slot %s is now occupied\n", slot.SlotNumber)
}

func (s *InstrumentedShell) printSlots(slots []ParkingSlot) {
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSlot\tFloor\tZone\tStatus\tVehicle\tReserved By")
	for _, slot := range slots {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			slot.ID, slot.SlotNumber, slot.Floor, slot.Zone, slot.Status,
			slot.VehicleNumber.ValueOrZero(), slot.ReservedBy.ValueOrZero())
	}
	tw.Flush()
}

func (s *InstrumentedShell) printBookings(bookings []Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(s.out, "No bookings")
		return
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tStudent\tSlot\tVehicle\tStatus")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.StudentName, b.SlotNumber, b.VehicleNumber, b.Status)
	}
	tw.Flush()
}
