package parking

import (
	"slices"
	"strings"
)

type SearchScope string

const (
	ScopeStudent SearchScope = "student"
	ScopeAdmin   SearchScope = "admin"
)

// Search matches term case-insensitively against slot number and zone. The
// admin scope also matches the vehicle number.
func Search(slots []ParkingSlot, term string, scope SearchScope) []ParkingSlot {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return slices.Clone(slots)
	}

	matches := func(s string) bool {
		return strings.Contains(strings.ToLower(s), needle)
	}

	found := make([]ParkingSlot, 0, len(slots))
	for _, slot := range slots {
		if matches(slot.SlotNumber) || matches(slot.Zone) ||
			(scope == ScopeAdmin && slot.VehicleNumber.Valid && matches(slot.VehicleNumber.String)) {
			found = append(found, slot)
		}
	}
	return found
}

type ZoneGroup struct {
	Zone  string        `json:"zone"`
	Slots []ParkingSlot `json:"slots"`
}

type FloorGroup struct {
	Floor int         `json:"floor"`
	Zones []ZoneGroup `json:"zones"`
}

// GroupByFloor partitions slots by floor and zone, both ascending. Slots keep
// their registry order inside a zone.
func GroupByFloor(slots []ParkingSlot) []FloorGroup {
	var floors []int
	for _, slot := range slots {
		if !slices.Contains(floors, slot.Floor) {
			floors = append(floors, slot.Floor)
		}
	}
	slices.Sort(floors)

	groups := make([]FloorGroup, 0, len(floors))
	for _, floor := range floors {
		var zones []string
		for _, slot := range slots {
			if slot.Floor == floor && !slices.Contains(zones, slot.Zone) {
				zones = append(zones, slot.Zone)
			}
		}
		slices.Sort(zones)

		group := FloorGroup{Floor: floor, Zones: make([]ZoneGroup, 0, len(zones))}
		for _, zone := range zones {
			zg := ZoneGroup{Zone: zone}
			for _, slot := range slots {
				if slot.Floor == floor && slot.Zone == zone {
					zg.Slots = append(zg.Slots, slot)
				}
			}
			group.Zones = append(group.Zones, zg)
		}
		groups = append(groups, group)
	}

	return groups
}
