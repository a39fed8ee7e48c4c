package parking

import (
	"errors"
	"testing"
	"time"
)

func TestNewSlot(t *testing.T) {
	now := time.Now()
	slot := NewSlot("1", 1, "A", "A-101", now)

	if slot.Status != StatusAvailable {
		t.Errorf("Expected new slot to be available, got %s", slot.Status)
	}

	if slot.VehicleNumber.Valid || slot.ReservedBy.Valid || slot.ReservedUntil.Valid {
		t.Error("Expected new slot to have no occupant fields")
	}

	if !slot.UpdatedAt.Equal(now) {
		t.Errorf("Expected updated_at %v, got %v", now, slot.UpdatedAt)
	}
}

func TestSlotReserve(t *testing.T) {
	now := time.Now()
	until := now.Add(2 * time.Hour)
	slot := NewSlot("1", 1, "A", "A-101", now.Add(-time.Hour))

	slot.reserve("KA01HH1234", "john.doe@university.edu", until, now)

	if slot.Status != StatusReserved {
		t.Errorf("Expected reserved, got %s", slot.Status)
	}
	if slot.VehicleNumber.String != "KA01HH1234" {
		t.Errorf("Expected vehicle KA01HH1234, got %q", slot.VehicleNumber.String)
	}
	if !slot.ReservedUntil.Time.Equal(until) {
		t.Errorf("Expected reserved_until %v, got %v", until, slot.ReservedUntil.Time)
	}
	if !slot.UpdatedAt.Equal(now) {
		t.Error("Expected updated_at to be touched")
	}
}

func TestSlotClearOccupant(t *testing.T) {
	now := time.Now()
	slot := NewSlot("1", 1, "A", "A-101", now)
	slot.reserve("KA01HH1234", "john.doe@university.edu", now.Add(time.Hour), now)

	slot.clearOccupant()

	if slot.VehicleNumber.Valid || slot.ReservedBy.Valid || slot.ReservedUntil.Valid {
		t.Error("Expected occupant fields to be cleared")
	}
}

func TestParseSlotStatus(t *testing.T) {
	for _, status := range SlotStatuses {
		got, err := ParseSlotStatus(string(status))
		if err != nil {
			t.Errorf("Unexpected error for %s: %v", status, err)
		}
		if got != status {
			t.Errorf("Expected %s, got %s", status, got)
		}
	}

	_, err := ParseSlotStatus("broken")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}
