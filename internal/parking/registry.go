package parking

import (
	"slices"
	"sync"
	"time"
)

// Registry owns the live slot collection. Every mutation builds the next
// snapshot with the pure operations and swaps it in whole; readers always
// get copies. The booking list is sample data and is never written.
type Registry struct {
	mu         sync.RWMutex
	slots      []ParkingSlot
	bookings   []Booking
	users      []User
	reservedBy string
	now        func() time.Time
}

func NewRegistry(slots []ParkingSlot, bookings []Booking, users []User, reservedBy string) *Registry {
	return &Registry{
		slots:      slices.Clone(slots),
		bookings:   slices.Clone(bookings),
		users:      slices.Clone(users),
		reservedBy: reservedBy,
		now:        time.Now,
	}
}

func NewSeededRegistry(reservedBy string) *Registry {
	now := time.Now()
	return NewRegistry(SeedSlots(now), SeedBookings(now), SeedUsers(), reservedBy)
}

func (r *Registry) Slots() []ParkingSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.slots)
}

func (r *Registry) Slot(slotID string) (ParkingSlot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return FindSlot(r.slots, slotID)
}

func (r *Registry) Stats() ParkingStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ComputeStats(r.slots)
}

func (r *Registry) Summary() DashboardSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Summarize(r.slots)
}

func (r *Registry) ReservedBy() string {
	return r.reservedBy
}

// Book reserves slotID. An empty reservedBy falls back to the registry's
// configured identity. The returned bool reports whether the slot exists;
// an unknown slot leaves the registry untouched.
func (r *Registry) Book(slotID, vehicleNumber string, durationHours int, reservedBy string) (ParkingSlot, bool) {
	if reservedBy == "" {
		reservedBy = r.reservedBy
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = Book(r.slots, slotID, vehicleNumber, durationHours, reservedBy, r.now())
	return FindSlot(r.slots, slotID)
}

func (r *Registry) SetStatus(slotID string, status SlotStatus) (ParkingSlot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = SetStatus(r.slots, slotID, status, r.now())
	return FindSlot(r.slots, slotID)
}

func (r *Registry) ResetAvailable() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var touched int
	r.slots, touched = ResetAvailable(r.slots, r.now())
	return touched
}

func (r *Registry) SimulateParking() (ParkingSlot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		id string
		ok bool
	)
	r.slots, id, ok = SimulateParking(r.slots, r.now())
	if !ok {
		return ParkingSlot{}, false
	}
	return FindSlot(r.slots, id)
}

func (r *Registry) Bookings() []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.bookings)
}

func (r *Registry) ActiveBookings(limit int) []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ActiveBookings(r.bookings, limit)
}

func (r *Registry) Users() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users)
}
