package progress

import "math"

const (
	failIntervalDays  = 1
	messyIntervalDays = 2
	hardBaseDays      = 4
	easyBaseDays      = 7
	growthFactor      = 2.0
	maxIntervalDays   = 90
)

// NextInterval returns the number of days until a problem should be
// attempted again. Failed attempts come back the next day regardless of
// history; successful ones are pushed out further the more often the
// problem has been attempted, up to a cap.
func NextInterval(rating Rating, attempts int64) int {
	if attempts < 1 {
		attempts = 1
	}

	switch rating {
	case RatingShortFail, RatingLongFail:
		return failIntervalDays
	case RatingMessy:
		return messyIntervalDays
	}

	base := hardBaseDays
	if rating == RatingEasy {
		base = easyBaseDays
	}

	days := float64(base) * math.Pow(growthFactor, float64(attempts-1))
	if days > maxIntervalDays {
		return maxIntervalDays
	}
	return int(math.Ceil(days))
}
