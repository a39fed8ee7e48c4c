package parking

import (
	"testing"
	"time"
)

func slotIDs(slots []ParkingSlot) []string {
	ids := make([]string, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestSearchBySlotNumberAndZone(t *testing.T) {
	slots := SeedSlots(time.Now())

	if got := Search(slots, "a-10", ScopeStudent); len(got) != 6 {
		t.Errorf("Expected 6 matches for a-10, got %v", slotIDs(got))
	}

	// Every slot number contains its zone letter, so a zone search hits the zone.
	if got := Search(slots, "b", ScopeStudent); len(got) != 12 {
		t.Errorf("Expected 12 zone B matches, got %d", len(got))
	}

	if got := Search(slots, "  ", ScopeStudent); len(got) != len(slots) {
		t.Errorf("Expected blank term to return all slots, got %d", len(got))
	}
}

func TestSearchVehicleNumberOnlyForAdmin(t *testing.T) {
	slots := SeedSlots(time.Now())

	if got := Search(slots, "ghi", ScopeStudent); len(got) != 0 {
		t.Errorf("Expected no student match on vehicle number, got %v", slotIDs(got))
	}

	got := Search(slots, "ghi", ScopeAdmin)
	if len(got) != 1 || got[0].ID != "15" {
		t.Errorf("Expected admin match on slot 15, got %v", slotIDs(got))
	}
}

func TestGroupByFloor(t *testing.T) {
	now := time.Now()
	slots := []ParkingSlot{
		NewSlot("x", 2, "B", "B-201", now),
		NewSlot("y", 1, "B", "B-101", now),
		NewSlot("z", 2, "A", "A-201", now),
		NewSlot("w", 1, "B", "B-102", now),
	}

	groups := GroupByFloor(slots)

	if len(groups) != 2 || groups[0].Floor != 1 || groups[1].Floor != 2 {
		t.Fatalf("Expected floors [1 2], got %+v", groups)
	}
	if len(groups[0].Zones) != 1 || groups[0].Zones[0].Zone != "B" {
		t.Errorf("Expected floor 1 to only have zone B, got %+v", groups[0].Zones)
	}
	if ids := slotIDs(groups[0].Zones[0].Slots); len(ids) != 2 || ids[0] != "y" || ids[1] != "w" {
		t.Errorf("Expected registry order [y w], got %v", ids)
	}
	if groups[1].Zones[0].Zone != "A" || groups[1].Zones[1].Zone != "B" {
		t.Errorf("Expected zones sorted on floor 2, got %+v", groups[1].Zones)
	}
}

func TestGroupByFloorSeed(t *testing.T) {
	groups := GroupByFloor(SeedSlots(time.Now()))

	total := 0
	for _, floor := range groups {
		if len(floor.Zones) != 2 {
			t.Errorf("Expected 2 zones on floor %d, got %d", floor.Floor, len(floor.Zones))
		}
		for _, zone := range floor.Zones {
			total += len(zone.Slots)
		}
	}
	if total != 24 {
		t.Errorf("Expected 24 grouped slots, got %d", total)
	}
}
