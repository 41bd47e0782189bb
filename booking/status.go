package booking

// BackendStatus tells the booking flow whether the backing services are
// reachable. It is set once from the startup connectivity probe and passed
// through explicitly; there is no ambient mode flag.
type BackendStatus int

const (
	// Connected means the database answered the probe; bookings persist.
	Connected BackendStatus = iota
	// Degraded means the probe failed; bookings are simulated for the rest
	// of the session instead of erroring.
	Degraded
)

func (s BackendStatus) String() string {
	if s == Degraded {
		return "degraded"
	}
	return "connected"
}
