// Package timezone pins every date the booking form deals with to one location.
//
// Check-in and check-out are calendar dates (YYYY-MM-DD) without a time of day, so
// "today" (the minimum a date picker offers) and the night count between two dates
// both depend on which location the server considers local:
//
//	today := timezone.Today()                                 // "2025-06-01"
//	d, err := timezone.ParseDate("2025-06-03")                // midnight, app location
//	nights := timezone.NightsBetween("2025-06-01", "2025-06-03") // 2
//
// The location is configured via APP_TIMEZONE (IANA names such as "UTC" or
// "Asia/Jakarta") and is initialized when the package is imported.
package timezone
