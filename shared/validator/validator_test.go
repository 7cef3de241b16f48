package validator_test

import (
	"paroisse/shared/failure"
	"paroisse/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parishForm struct {
	Name     string `json:"name"       validate:"required,notblank,max=20"`
	Phone    string `json:"phone"      validate:"omitempty,max=8"`
	ParishID int64  `json:"paroisse_id" validate:"gt=0"`
	MassType string `json:"type_messe" validate:"omitempty,oneof=simple triduum neuvaine trentain"`
	Internal string `validate:"omitempty,min=2"`
}

func valid() parishForm {
	return parishForm{Name: "Saint-Michel", ParishID: 1, MassType: "neuvaine"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*parishForm)
		message string
	}{
		{
			name:   "valid",
			mutate: func(*parishForm) {},
		},
		{
			name:    "missing name",
			mutate:  func(f *parishForm) { f.Name = "" },
			message: "name est obligatoire",
		},
		{
			name:    "blank name",
			mutate:  func(f *parishForm) { f.Name = "   " },
			message: "name ne doit pas être vide",
		},
		{
			name:    "phone too long",
			mutate:  func(f *parishForm) { f.Phone = "+229 97 00 00 00" },
			message: "phone ne doit pas dépasser 8 caractères",
		},
		{
			name:    "parish id",
			mutate:  func(f *parishForm) { f.ParishID = 0 },
			message: "paroisse_id doit être supérieur à 0",
		},
		{
			name:    "unknown mass type",
			mutate:  func(f *parishForm) { f.MassType = "octave" },
			message: "type_messe doit valoir l'une de ces valeurs : simple triduum neuvaine trentain",
		},
		{
			name:    "field without json tag",
			mutate:  func(f *parishForm) { f.Internal = "x" },
			message: "Internal doit contenir au moins 2 caractères",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&parishForm{})

	require.Error(t, err)
	assert.Equal(t, "name est obligatoire; paroisse_id doit être supérieur à 0", err.Error())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Saint-Michel","paroisse_id":3}`},
		{name: "rule broken", body: `{"name":"Saint-Michel","paroisse_id":3,"type_messe":"octave"}`, wantErr: true},
		{name: "malformed", body: `{"name":}`, wantErr: true},
		{name: "empty", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form parishForm

			err := validator.Validate(strings.NewReader(tt.body), &form)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "Saint-Michel", form.Name)

				return
			}

			require.Error(t, err)
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		})
	}
}
