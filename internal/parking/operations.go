package parking

import (
	"slices"
	"time"
)

// DefaultDurationHours replaces a non-positive booking duration.
const DefaultDurationHours = 1

func NormalizeDuration(hours int) int {
	if hours <= 0 {
		return DefaultDurationHours
	}
	return hours
}

// Book returns a copy of slots with slotID reserved for vehicleNumber until
// now+durationHours. The slot's previous status is not checked. An unknown
// slotID yields an unchanged copy.
func Book(slots []ParkingSlot, slotID, vehicleNumber string, durationHours int, reservedBy string, now time.Time) []ParkingSlot {
	next := slices.Clone(slots)

	i := indexOf(next, slotID)
	if i < 0 {
		return next
	}

	until := now.Add(time.Duration(NormalizeDuration(durationHours)) * time.Hour)
	next[i].reserve(vehicleNumber, reservedBy, until, now)

	return next
}

// SetStatus returns a copy of slots with slotID moved to status. Moving to
// available clears the occupant fields; any other status keeps them as they
// were. An unknown slotID yields an unchanged copy.
func SetStatus(slots []ParkingSlot, slotID string, status SlotStatus, now time.Time) []ParkingSlot {
	next := slices.Clone(slots)

	i := indexOf(next, slotID)
	if i < 0 {
		return next
	}

	applyStatus(&next[i], status, now)

	return next
}

// ResetAvailable re-applies the available status to every slot that is
// already available, which only refreshes UpdatedAt. It also returns the
// number of slots touched.
func ResetAvailable(slots []ParkingSlot, now time.Time) ([]ParkingSlot, int) {
	next := slices.Clone(slots)

	touched := 0
	for i := range next {
		if next[i].IsAvailable() {
			applyStatus(&next[i], StatusAvailable, now)
			touched++
		}
	}

	return next, touched
}

// SimulateParking marks the first available slot as occupied. It reports the
// chosen slot id, or false when nothing is available.
func SimulateParking(slots []ParkingSlot, now time.Time) ([]ParkingSlot, string, bool) {
	i := slices.IndexFunc(slots, ParkingSlot.IsAvailable)
	if i < 0 {
		return slices.Clone(slots), "", false
	}

	id := slots[i].ID
	return SetStatus(slots, id, StatusOccupied, now), id, true
}

func FindSlot(slots []ParkingSlot, slotID string) (ParkingSlot, bool) {
	i := indexOf(slots, slotID)
	if i < 0 {
		return ParkingSlot{}, false
	}
	return slots[i], true
}

func applyStatus(slot *ParkingSlot, status SlotStatus, now time.Time) {
	slot.Status = status
	slot.UpdatedAt = now
	if status == StatusAvailable {
		slot.clearOccupant()
	}
}

func indexOf(slots []ParkingSlot, slotID string) int {
	return slices.IndexFunc(slots, func(s ParkingSlot) bool {
		return s.ID == slotID
	})
}
