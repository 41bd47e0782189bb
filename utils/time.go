package utils

import "time"

// ToClinicTZ converts a timestamp to the clinic's display time zone,
// falling back to the original location when the zone is unavailable.
func ToClinicTZ(t time.Time) time.Time {
	tz := "Asia/Kolkata"
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return t
	}
	return t.In(loc)
}
