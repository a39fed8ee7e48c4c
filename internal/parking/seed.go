package parking

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// SeedSlots returns the campus layout: two floors, zones A and B, six slots
// per zone.
func SeedSlots(now time.Time) []ParkingSlot {
	occupied := func(s ParkingSlot, vehicle string) ParkingSlot {
		s.Status = StatusOccupied
		s.VehicleNumber = null.StringFrom(vehicle)
		return s
	}
	reserved := func(s ParkingSlot, by string, hours int) ParkingSlot {
		s.Status = StatusReserved
		s.ReservedBy = null.StringFrom(by)
		s.ReservedUntil = null.TimeFrom(now.Add(time.Duration(hours) * time.Hour))
		return s
	}
	disabled := func(s ParkingSlot) ParkingSlot {
		s.Status = StatusDisabled
		return s
	}

	return []ParkingSlot{
		NewSlot("1", 1, "A", "A-101", now),
		occupied(NewSlot("2", 1, "A", "A-102", now), "ABC-1234"),
		NewSlot("3", 1, "A", "A-103", now),
		reserved(NewSlot("4", 1, "A", "A-104", now), "john.doe@university.edu", 2),
		NewSlot("5", 1, "A", "A-105", now),
		occupied(NewSlot("6", 1, "A", "A-106", now), "XYZ-5678"),

		NewSlot("7", 1, "B", "B-101", now),
		NewSlot("8", 1, "B", "B-102", now),
		occupied(NewSlot("9", 1, "B", "B-103", now), "DEF-9012"),
		disabled(NewSlot("10", 1, "B", "B-104", now)),
		NewSlot("11", 1, "B", "B-105", now),
		reserved(NewSlot("12", 1, "B", "B-106", now), "jane.smith@university.edu", 1),

		NewSlot("13", 2, "A", "A-201", now),
		NewSlot("14", 2, "A", "A-202", now),
		occupied(NewSlot("15", 2, "A", "A-203", now), "GHI-3456"),
		NewSlot("16", 2, "A", "A-204", now),
		occupied(NewSlot("17", 2, "A", "A-205", now), "JKL-7890"),
		NewSlot("18", 2, "A", "A-206", now),

		NewSlot("19", 2, "B", "B-201", now),
		reserved(NewSlot("20", 2, "B", "B-202", now), "mike.johnson@university.edu", 3),
		NewSlot("21", 2, "B", "B-203", now),
		NewSlot("22", 2, "B", "B-204", now),
		occupied(NewSlot("23", 2, "B", "B-205", now), "MNO-1234"),
		NewSlot("24", 2, "B", "B-206", now),
	}
}

func SeedBookings(now time.Time) []Booking {
	return []Booking{
		{
			ID:            "b1",
			StudentID:     "s1",
			StudentName:   "John Doe",
			StudentEmail:  "john.doe@university.edu",
			SlotID:        "4",
			SlotNumber:    "A-104",
			VehicleNumber: "ABC-1234",
			StartTime:     now,
			EndTime:       now.Add(2 * time.Hour),
			Status:        BookingActive,
			CreatedAt:     now,
		},
		{
			ID:            "b2",
			StudentID:     "s2",
			StudentName:   "Jane Smith",
			StudentEmail:  "jane.smith@university.edu",
			SlotID:        "12",
			SlotNumber:    "B-106",
			VehicleNumber: "XYZ-5678",
			StartTime:     now,
			EndTime:       now.Add(time.Hour),
			Status:        BookingActive,
			CreatedAt:     now,
		},
		{
			ID:            "b3",
			StudentID:     "s3",
			StudentName:   "Mike Johnson",
			StudentEmail:  "mike.johnson@university.edu",
			SlotID:        "20",
			SlotNumber:    "B-202",
			VehicleNumber: "DEF-9012",
			StartTime:     now.Add(-3 * time.Hour),
			EndTime:       now.Add(-time.Hour),
			Status:        BookingCompleted,
			CreatedAt:     now.Add(-3 * time.Hour),
		},
	}
}

func SeedUsers() []User {
	return []User{
		{ID: "s1", Name: "John Doe", Email: "john.doe@university.edu", Role: RoleStudent, VehicleNumber: "ABC-1234"},
		{ID: "s2", Name: "Jane Smith", Email: "jane.smith@university.edu", Role: RoleStudent, VehicleNumber: "XYZ-5678"},
		{ID: "s3", Name: "Mike Johnson", Email: "mike.johnson@university.edu", Role: RoleStudent, VehicleNumber: "DEF-9012"},
		{ID: "a1", Name: "Admin User", Email: "admin@university.edu", Role: RoleAdmin},
	}
}
