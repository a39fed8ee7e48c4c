package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"campus-parking/internal/logging"
	"campus-parking/internal/parking"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	registry            *parking.InstrumentedRegistry
	serviceName         string
	activeBookingsLimit int
}

func NewHandler(registry *parking.InstrumentedRegistry, serviceName string, activeBookingsLimit int) *Handler {
	return &Handler{
		registry:            registry,
		serviceName:         serviceName,
		activeBookingsLimit: activeBookingsLimit,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Meta:    extractMeta(r.Context()),
	})
}

func searchScope(r *http.Request) parking.SearchScope {
	if r.URL.Query().Get("scope") == string(parking.ScopeAdmin) {
		return parking.ScopeAdmin
	}
	return parking.ScopeStudent
}

func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slots := parking.Search(h.registry.GetSlots(ctx), r.URL.Query().Get("q"), searchScope(r))

	WriteSuccess(ctx, w, "Slots retrieved successfully", SlotListResponse{
		Count: len(slots),
		Slots: slots,
	})
}

func (h *Handler) GroupedSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slots := parking.Search(h.registry.GetSlots(ctx), r.URL.Query().Get("q"), searchScope(r))

	WriteSuccess(ctx, w, "Slots grouped by floor and zone", parking.GroupByFloor(slots))
}

func (h *Handler) GetSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slot, ok := h.registry.Slot(chi.URLParam(r, "id"))
	if !ok {
		WriteError(ctx, w, http.StatusNotFound, "Slot not found")
		return
	}

	WriteSuccess(ctx, w, "Slot retrieved successfully", slot)
}

func (h *Handler) BookSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicleNumber := parking.NormalizeVehicleNumber(req.VehicleNumber)
	if vehicleNumber == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Vehicle number is required")
		return
	}

	slotID := chi.URLParam(r, "id")
	hours := parking.NormalizeDuration(req.DurationHours)

	slot, found := h.registry.Book(ctx, slotID, vehicleNumber, hours, req.ReservedBy)
	if !found {
		logging.Debug(ctx, "booking ignored for unknown slot", slog.String("slot_id", slotID))
		WriteSuccess(ctx, w, "No slot matched; nothing changed", SlotMutationResponse{
			Applied: false,
			Stats:   h.registry.GetSummary(ctx),
		})
		return
	}

	logging.Info(ctx, "slot booked",
		slog.String("slot_id", slot.ID),
		slog.String("slot_number", slot.SlotNumber),
		slog.Int("duration_hours", hours),
	)

	WriteSuccess(ctx, w, "Booking confirmed", SlotMutationResponse{
		Applied: true,
		Slot:    &slot,
		Stats:   h.registry.GetSummary(ctx),
	})
}

func (h *Handler) UpdateSlotStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := parking.ParseSlotStatus(req.Status)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Status must be one of: available, occupied, reserved, disabled")
		return
	}

	slotID := chi.URLParam(r, "id")

	slot, found := h.registry.SetStatus(ctx, slotID, status)
	if !found {
		logging.Debug(ctx, "status change ignored for unknown slot", slog.String("slot_id", slotID))
		WriteSuccess(ctx, w, "No slot matched; nothing changed", SlotMutationResponse{
			Applied: false,
			Stats:   h.registry.GetSummary(ctx),
		})
		return
	}

	logging.Info(ctx, "slot status updated",
		slog.String("slot_id", slot.ID),
		slog.String("status", string(status)),
	)

	WriteSuccess(ctx, w, "Slot status has been updated to "+string(status), SlotMutationResponse{
		Applied: true,
		Slot:    &slot,
		Stats:   h.registry.GetSummary(ctx),
	})
}

func (h *Handler) ResetSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updated := h.registry.ResetAvailable(ctx)
	logging.Info(ctx, "bulk reset applied", slog.Int("updated", updated))

	WriteSuccess(ctx, w, "Updated "+strconv.Itoa(updated)+" slots to available", ResetResponse{
		Updated: updated,
		Stats:   h.registry.GetSummary(ctx),
	})
}

func (h *Handler) SimulateParking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slot, ok := h.registry.SimulateParking(ctx)
	if !ok {
		WriteError(ctx, w, http.StatusConflict, "No available slot to occupy")
		return
	}

	WriteSuccess(ctx, w, "Parking simulated", SlotMutationResponse{
		Applied: true,
		Slot:    &slot,
		Stats:   h.registry.GetSummary(ctx),
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	WriteSuccess(ctx, w, "Stats retrieved successfully", h.registry.GetSummary(ctx))
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookings := h.registry.Bookings()
	WriteSuccess(ctx, w, "Bookings retrieved successfully", BookingListResponse{
		Count:    len(bookings),
		Bookings: bookings,
	})
}

func (h *Handler) ListActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := h.activeBookingsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(ctx, w, http.StatusBadRequest, "Limit must be a number")
			return
		}
		limit = n
	}

	bookings := h.registry.ActiveBookings(limit)
	WriteSuccess(ctx, w, "Active bookings retrieved successfully", BookingListResponse{
		Count:    len(bookings),
		Bookings: bookings,
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(r.Context(), w, "Users retrieved successfully", h.registry.Users())
}
