package dto

import (
	"fmt"
	"net/url"
	"paroisse/internal/domains/intention/model"
	"paroisse/shared/constant"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	FormFieldParishID = "paroisse_id"
	FormFieldMassType = "type_messe"
	FormFieldDonor    = "nom"
	FormFieldDate     = "date_%d"
	FormFieldTime     = "heure_%d"
	FormFieldText     = "texte_%d"
)

// BookingRequest is the decoded booking form.
type BookingRequest struct {
	ParishID int64              `json:"paroisse_id" validate:"required,gt=0"`
	MassType string             `json:"type_messe"  validate:"omitempty,max=50"`
	Donor    string             `json:"nom"         validate:"max=100"`
	Slots    map[int]model.Slot `json:"-"`
}

// FromForm reads the indexed date_i, heure_i and texte_i fields up to the
// longest series.
func (r *BookingRequest) FromForm(form url.Values) error {
	if raw := strings.TrimSpace(form.Get(FormFieldParishID)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer", FormFieldParishID)
		}

		r.ParishID = id
	}

	r.MassType = form.Get(FormFieldMassType)
	r.Donor = form.Get(FormFieldDonor)
	r.Slots = make(map[int]model.Slot)

	for idx := 1; idx <= model.MaxOccurrences; idx++ {
		slot := model.Slot{
			Date: form.Get(fmt.Sprintf(FormFieldDate, idx)),
			Time: form.Get(fmt.Sprintf(FormFieldTime, idx)),
			Text: form.Get(fmt.Sprintf(FormFieldText, idx)),
		}

		if slot != (model.Slot{}) {
			r.Slots[idx] = slot
		}
	}

	return nil
}

type ReceiptResponse struct {
	Donor       string `json:"donor"`
	Parish      string `json:"parish"`
	MassType    string `json:"mass_type"`
	Offering    int    `json:"offering"`
	ServiceFee  int    `json:"service_fee"`
	Total       int    `json:"total"`
	IssuedAt    string `json:"issued_at"`
	BookingRef  string `json:"booking_ref"`
	Occurrences int    `json:"occurrences"`
	Skipped     []int  `json:"skipped"`
}

// NewReceipt builds the confirmation of a committed plan.
func NewReceipt(parish string, batch model.Batch, plan model.Plan, price model.Price, issuedAt time.Time) ReceiptResponse {
	skipped := plan.Skipped
	if skipped == nil {
		skipped = []int{}
	}

	return ReceiptResponse{
		Donor:       strings.TrimSpace(batch.Donor),
		Parish:      parish,
		MassType:    batch.MassType.Label(),
		Offering:    price.Offering,
		ServiceFee:  price.ServiceFee,
		Total:       price.Total,
		IssuedAt:    issuedAt.Format(constant.ReceiptLayout),
		BookingRef:  batch.Ref,
		Occurrences: len(plan.Records),
		Skipped:     skipped,
	}
}

type IntentionResponse struct {
	ID         int64  `json:"id"`
	Donor      string `json:"donor"`
	MassType   string `json:"mass_type"`
	Text       string `json:"text"`
	Occurrence int    `json:"occurrence"`
	BookingRef string `json:"booking_ref"`
}

func (r *IntentionResponse) FromModel(model model.Intention) {
	r.ID = model.ID
	r.Donor = model.Donor
	r.MassType = model.MassType
	r.Text = model.Text
	r.Occurrence = model.Occurrence
	r.BookingRef = model.BookingRef
}

type TimeGroup struct {
	Time       string              `json:"time"`
	Intentions []IntentionResponse `json:"intentions"`
}

// ListingResponse holds a parish's intentions for one day grouped by
// celebration time. Rows keep the order they were read in.
type ListingResponse struct {
	Date   string      `json:"date"`
	Groups []TimeGroup `json:"groups"`
}

func (r *ListingResponse) FromModels(date string, models []model.Intention) {
	r.Date = date
	r.Groups = []TimeGroup{}

	index := make(map[string]int)

	for _, mod := range models {
		pos, ok := index[mod.CelebrationTime]
		if !ok {
			pos = len(r.Groups)
			index[mod.CelebrationTime] = pos
			r.Groups = append(r.Groups, TimeGroup{Time: mod.CelebrationTime})
		}

		var item IntentionResponse
		item.FromModel(mod)
		r.Groups[pos].Intentions = append(r.Groups[pos].Intentions, item)
	}

	sort.SliceStable(r.Groups, func(i, j int) bool {
		return r.Groups[i].Time < r.Groups[j].Time
	})
}
