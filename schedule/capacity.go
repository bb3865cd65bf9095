package schedule

const (
	// MesaCapacity is how many back-to-back ponencias one mesa holds.
	MesaCapacity = 6
	// SymposiumCapacity: a simposio occupies its room exclusively.
	SymposiumCapacity = 1
)

// MaxCapacity returns the number of concurrent events permitted in one
// slot of (day, room). It is a pure policy function; live occupancy is
// counted separately by the caller.
func MaxCapacity(day Day, room int) int {
	if IsSymposiumRoom(day, room) {
		return SymposiumCapacity
	}
	return MesaCapacity
}
