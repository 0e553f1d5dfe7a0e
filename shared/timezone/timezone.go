package timezone

import (
	"math"
	"paradise/config"
	"paradise/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the current calendar date in the application timezone as YYYY-MM-DD.
func Today() string {
	return Now().Format(constant.DateFormat)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return appLocation
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateFormat, value, GetLocation()) //nolint:wrapcheck
}

// FormatDate renders t as a YYYY-MM-DD calendar date in the application timezone.
func FormatDate(t time.Time) string {
	return t.In(GetLocation()).Format(constant.DateFormat)
}

// NightsBetween counts calendar nights from checkin to checkout. Invalid dates count as zero.
func NightsBetween(checkin, checkout string) int {
	in, err := ParseDate(checkin)
	if err != nil {
		return 0
	}

	out, err := ParseDate(checkout)
	if err != nil {
		return 0
	}

	// rounding absorbs DST shifts
	return int(math.Round(out.Sub(in).Hours() / hoursPerDay))
}
