package parking

import (
	"testing"
	"time"
)

func TestActiveBookings(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", Status: BookingActive},
		{ID: "b2", Status: BookingCompleted},
		{ID: "b3", Status: BookingActive},
		{ID: "b4", Status: BookingCancelled},
		{ID: "b5", Status: BookingActive},
	}

	got := ActiveBookings(bookings, 2)
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b3" {
		t.Errorf("Expected [b1 b3], got %+v", got)
	}

	if got := ActiveBookings(bookings, 0); len(got) != 3 {
		t.Errorf("Expected 3 active bookings, got %d", len(got))
	}

	if got := ActiveBookings(nil, 2); len(got) != 0 {
		t.Errorf("Expected no bookings, got %d", len(got))
	}
}

func TestSeedBookingsReferenceSeedSlots(t *testing.T) {
	now := time.Now()
	slots := SeedSlots(now)

	for _, b := range SeedBookings(now) {
		slot, ok := FindSlot(slots, b.SlotID)
		if !ok {
			t.Errorf("Booking %s references unknown slot %s", b.ID, b.SlotID)
			continue
		}
		if slot.SlotNumber != b.SlotNumber {
			t.Errorf("Booking %s slot number %s, slot has %s", b.ID, b.SlotNumber, slot.SlotNumber)
		}
		if b.EndTime.Before(b.StartTime) {
			t.Errorf("Booking %s ends before it starts", b.ID)
		}
	}
}
