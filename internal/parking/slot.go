package parking

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/guregu/null.v4"
)

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusOccupied  SlotStatus = "occupied"
	StatusReserved  SlotStatus = "reserved"
	StatusDisabled  SlotStatus = "disabled"
)

var ErrInvalidStatus = errors.New("invalid slot status")

var SlotStatuses = []SlotStatus{StatusAvailable, StatusOccupied, StatusReserved, StatusDisabled}

func ParseSlotStatus(s string) (SlotStatus, error) {
	for _, status := range SlotStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ParkingSlot is a single parking space. VehicleNumber, ReservedBy and
// ReservedUntil are only meaningful while the slot is occupied or reserved.
type ParkingSlot struct {
	ID            string      `json:"id"`
	Floor         int         `json:"floor"`
	Zone          string      `json:"zone"`
	SlotNumber    string      `json:"slot_number"`
	Status        SlotStatus  `json:"status"`
	VehicleNumber null.String `json:"vehicle_number"`
	ReservedBy    null.String `json:"reserved_by"`
	ReservedUntil null.Time   `json:"reserved_until"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func NewSlot(id string, floor int, zone, slotNumber string, now time.Time) ParkingSlot {
	return ParkingSlot{
		ID:         id,
		Floor:      floor,
		Zone:       zone,
		SlotNumber: slotNumber,
		Status:     StatusAvailable,
		UpdatedAt:  now,
	}
}

func (s ParkingSlot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

func (s *ParkingSlot) reserve(vehicleNumber, reservedBy string, until, now time.Time) {
	s.Status = StatusReserved
	s.VehicleNumber = null.StringFrom(vehicleNumber)
	s.ReservedBy = null.StringFrom(reservedBy)
	s.ReservedUntil = null.TimeFrom(until)
	s.UpdatedAt = now
}

func (s *ParkingSlot) clearOccupant() {
	s.VehicleNumber = null.String{}
	s.ReservedBy = null.String{}
	s.ReservedUntil = null.Time{}
}
