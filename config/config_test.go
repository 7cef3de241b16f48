package config_test

import (
	"os"
	"paroisse/config"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Defaults(t *testing.T) {
	var booking config.Booking

	assert.Equal(t, 2*time.Hour, booking.LeadTime())
	assert.Equal(t, 50, booking.Fee())
}

func TestBooking_Overrides(t *testing.T) {
	booking := config.Booking{LeadTimeMinutes: 30, ServiceFee: 100}

	assert.Equal(t, 30*time.Minute, booking.LeadTime())
	assert.Equal(t, 100, booking.Fee())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		booking config.Booking
		wantErr bool
	}{
		{name: "zero values", booking: config.Booking{}},
		{name: "explicit values", booking: config.Booking{LeadTimeMinutes: 60, ServiceFee: 25}},
		{name: "negative lead time", booking: config.Booking{LeadTimeMinutes: -1}, wantErr: true},
		{name: "negative fee", booking: config.Booking{ServiceFee: -5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Booking: tt.booking}

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_API_KEY", "secret")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("BOOKING_SERVICE_FEE", "75")
	t.Setenv("BOOKING_STRICT_MASS_TYPE", "true")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db-primary")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.App.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORS.AllowedOrigins)
	assert.Equal(t, 75, cfg.Booking.Fee())
	assert.True(t, cfg.Booking.StrictMassType)
	assert.Equal(t, "db-primary", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
	assert.Equal(t, "disable", cfg.DB.Postgres.Write.SSLMode)
	assert.Equal(t, "Africa/Porto-Novo", cfg.App.Timezone)
}

func TestLoad_FromDotenvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("BOOKING_LEAD_TIME_MINUTES=45\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BOOKING_LEAD_TIME_MINUTES") })

	cfg, err := config.Load(file)

	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, cfg.Booking.LeadTime())
}

func TestLoad_RejectsInvalidBooking(t *testing.T) {
	t.Setenv("BOOKING_SERVICE_FEE", "-1")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}
