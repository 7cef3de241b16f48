package dto_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paroisse/internal/domains/intention/model"
	"paroisse/internal/domains/intention/model/dto"
)

func TestBookingRequest_FromForm(t *testing.T) {
	form := url.Values{}
	form.Set("paroisse_id", "12")
	form.Set("type_messe", "Triduum")
	form.Set("nom", "Jean")
	form.Set("date_1", "2026-03-15")
	form.Set("heure_1", "18h30")
	form.Set("texte_1", "Action de grâce")
	form.Set("date_3", "2026-03-17")

	var req dto.BookingRequest
	require.NoError(t, req.FromForm(form))

	assert.Equal(t, int64(12), req.ParishID)
	assert.Equal(t, "Triduum", req.MassType)
	assert.Equal(t, "Jean", req.Donor)
	assert.Len(t, req.Slots, 2)
	assert.Equal(t, model.Slot{Date: "2026-03-15", Time: "18h30", Text: "Action de grâce"}, req.Slots[1])
	assert.Equal(t, "2026-03-17", req.Slots[3].Date)
}

func TestBookingRequest_FromFormInvalidParish(t *testing.T) {
	var req dto.BookingRequest
	require.Error(t, req.FromForm(url.Values{"paroisse_id": {"abc"}}))
}

func TestNewReceipt(t *testing.T) {
	batch := model.Batch{Ref: "ref", Donor: "Jean", MassType: model.Triduum}
	plan := model.Plan{Records: make([]model.Intention, 3)}
	issued := time.Date(2026, time.March, 10, 9, 5, 0, 0, time.UTC)

	receipt := dto.NewReceipt("Saint Michel", batch, plan, model.PriceOf(model.Triduum, 50), issued)

	assert.Equal(t, "Triduum", receipt.MassType)
	assert.Equal(t, 6000, receipt.Offering)
	assert.Equal(t, 50, receipt.ServiceFee)
	assert.Equal(t, 6050, receipt.Total)
	assert.Equal(t, "10/03/2026 à 09:05", receipt.IssuedAt)
	assert.Equal(t, 3, receipt.Occurrences)
	assert.Equal(t, []int{}, receipt.Skipped)
}

func TestListingResponse_FromModels(t *testing.T) {
	t.Run("grouped by time", func(t *testing.T) {
		models := []model.Intention{
			{ID: 1, CelebrationTime: "18:30", Donor: "A"},
			{ID: 2, CelebrationTime: "06:30", Donor: "B"},
			{ID: 3, CelebrationTime: "18:30", Donor: "C"},
		}

		var res dto.ListingResponse
		res.FromModels("2026-03-15", models)

		require.Len(t, res.Groups, 2)
		assert.Equal(t, "06:30", res.Groups[0].Time)
		assert.Equal(t, "18:30", res.Groups[1].Time)
		require.Len(t, res.Groups[1].Intentions, 2)
		assert.Equal(t, int64(1), res.Groups[1].Intentions[0].ID)
		assert.Equal(t, int64(3), res.Groups[1].Intentions[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		var res dto.ListingResponse
		res.FromModels("2026-03-15", nil)

		assert.Equal(t, "2026-03-15", res.Date)
		assert.NotNil(t, res.Groups)
		assert.Empty(t, res.Groups)
	})
}
