// Package timezone pins every clock reading to the parish timezone.
//
// The zone comes from APP_TIMEZONE (default "Africa/Porto-Novo") and is
// resolved on first use. Unknown names fall back to UTC with an error log.
// Celebration times, the booking lead time and the default listing day are
// all evaluated in this zone:
//
//	now := timezone.Now()
//	day := timezone.Today()
//	stamp := timezone.Format(record.CreatedAt, time.RFC3339)
package timezone
