package format

import "time"

const dateLayout = "02/01/2006"

// Date renders t as DD/MM/YYYY in t's own location.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// ExpiryDate adds validityDays calendar days to the date of generatedAt.
// The result is midnight of that day in generatedAt's location, so DST shifts
// never move it to a neighbouring day.
func ExpiryDate(generatedAt time.Time, validityDays int) time.Time {
	y, m, d := generatedAt.Date()
	return time.Date(y, m, d+validityDays, 0, 0, 0, 0, generatedAt.Location())
}
