package parking

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a historical reservation record. SlotNumber is copied from the
// slot when the booking is created and is not kept in sync afterwards.
type Booking struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"student_id"`
	StudentName   string        `json:"student_name"`
	StudentEmail  string        `json:"student_email"`
	SlotID        string        `json:"slot_id"`
	SlotNumber    string        `json:"slot_number"`
	VehicleNumber string        `json:"vehicle_number"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ActiveBookings returns active bookings in order, at most limit of them.
// A limit of zero or less returns all.
func ActiveBookings(bookings []Booking, limit int) []Booking {
	active := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != BookingActive {
			continue
		}
		active = append(active, b)
		if limit > 0 && len(active) == limit {
			break
		}
	}
	return active
}

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}
