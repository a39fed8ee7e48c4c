package server

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-parking/internal/logging"
	"campus-parking/internal/parking"

	"go.opentelemetry.io/otel/trace"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type BookSlotRequest struct {
	VehicleNumber string `json:"vehicle_number"`
	DurationHours int    `json:"duration_hours"`
	ReservedBy    string `json:"reserved_by,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SlotMutationResponse reports the outcome of a book or status request.
// Applied is false when the slot id was unknown and nothing changed.
type SlotMutationResponse struct {
	Applied bool                     `json:"applied"`
	Slot    *parking.ParkingSlot     `json:"slot,omitempty"`
	Stats   parking.DashboardSummary `json:"stats"`
}

type ResetResponse struct {
	Updated int                      `json:"updated"`
	Stats   parking.DashboardSummary `json:"stats"`
}

type SlotListResponse struct {
	Count int                   `json:"count"`
	Slots []parking.ParkingSlot `json:"slots"`
}

type BookingListResponse struct {
	Count    int               `json:"count"`
	Bookings []parking.Booking `json:"bookings"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger().Error("failed to encode response", "error", err)
	}
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}
