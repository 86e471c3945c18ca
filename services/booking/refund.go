package booking

// CancellationWindowHours is the minimum lead time before departure for a
// cancellation to be accepted at all.
const CancellationWindowHours = 6.0

// RefundPercentage maps the time left until departure to the refunded share
// of the fare. Tiers are closed on the left, open on the right:
// [6,24) hours -> 75%, [24,72) -> 90%, [72,inf) -> 100%.
//
// Callers must have already rejected cancellations inside the cancellation
// window; this function is never invoked for less than 6 hours.
func RefundPercentage(hoursUntilDeparture float64) int {
	switch {
	case hoursUntilDeparture < 24:
		return 75
	case hoursUntilDeparture < 72:
		return 90
	default:
		return 100
	}
}
