package utils

import "time"

// ParisLocation returns the bakery's timezone (Europe/Paris)
func ParisLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		return time.UTC // Fallback to UTC if the zone database is unavailable
	}
	return loc
}

// NowParis returns the current time in the bakery's timezone
func NowParis() time.Time {
	return time.Now().In(ParisLocation())
}
