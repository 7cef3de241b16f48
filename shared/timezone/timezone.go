package timezone

import (
	"paroisse/config"
	"sync"
	"time"
	// Embedded zone database for hosts without one.
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "Africa/Porto-Novo"

var location = sync.OnceValue(func() *time.Location {
	return load(config.Get().App.Timezone)
})

// load resolves name, falling back to the default zone when empty and to UTC
// when the zone database does not know it.
func load(name string) *time.Location {
	if name == "" {
		log.Warn().Str("timezone", defaultTimezone).Msg("No timezone configured, using default")

		name = defaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Location is the application timezone.
func Location() *time.Location {
	return location()
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns midnight of the current day in the application timezone.
func Today() time.Time {
	year, month, day := Now().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, Location())
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
