package validator_test

import (
	"errors"
	"net/http"
	"paradise/config"
	"paradise/shared/failure"
	"paradise/shared/validator"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnknownOption = errors.New("unknown option")

type option string

func (o option) Validate(*config.Config) error {
	if slices.Contains([]string{"alpha", "beta"}, string(o)) {
		return nil
	}

	return errUnknownOption
}

type stayForm struct {
	Name     string `json:"name"     validate:"required"                     msg:"name please"`
	Email    string `json:"email"    validate:"basicemail"                   msg:"email please"`
	Option   option `json:"option"   validate:"required,paradise"            msg:"option please"`
	Count    string `json:"count"    validate:"intrange=1 8"                 msg:"count please"`
	From     string `json:"from"     validate:"required,isodate"             msg:"from please"`
	To       string `json:"to"       validate:"required,isodate,afterfield=From" msg:"to please" msg_afterfield:"to after from"`
	Accepted bool   `json:"accepted" validate:"required"`
}

func validStay() stayForm {
	return stayForm{
		Name:     "Ada",
		Email:    "ada@example.com",
		Option:   "alpha",
		Count:    "2",
		From:     "2030-01-01",
		To:       "2030-01-03",
		Accepted: true,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		modify func(form *stayForm)
		fields map[string]string
	}{
		{
			name:   "valid struct",
			modify: func(*stayForm) {},
		},
		{
			name:   "missing name",
			modify: func(form *stayForm) { form.Name = "" },
			fields: map[string]string{"name": "name please"},
		},
		{
			name:   "email without domain dot",
			modify: func(form *stayForm) { form.Email = "ada@example" },
			fields: map[string]string{"email": "email please"},
		},
		{
			name:   "email with whitespace",
			modify: func(form *stayForm) { form.Email = "a da@example.com" },
			fields: map[string]string{"email": "email please"},
		},
		{
			name:   "option outside the configured set",
			modify: func(form *stayForm) { form.Option = "gamma" },
			fields: map[string]string{"option": "option please"},
		},
		{
			name:   "count below range",
			modify: func(form *stayForm) { form.Count = "0" },
			fields: map[string]string{"count": "count please"},
		},
		{
			name:   "count above range",
			modify: func(form *stayForm) { form.Count = "9" },
			fields: map[string]string{"count": "count please"},
		},
		{
			name:   "count not whole",
			modify: func(form *stayForm) { form.Count = "2.5" },
			fields: map[string]string{"count": "count please"},
		},
		{
			name:   "count not numeric",
			modify: func(form *stayForm) { form.Count = "two" },
			fields: map[string]string{"count": "count please"},
		},
		{
			name:   "count written as whole float",
			modify: func(form *stayForm) { form.Count = "3.0" },
		},
		{
			name:   "impossible calendar date",
			modify: func(form *stayForm) { form.From = "2030-02-30" },
			fields: map[string]string{"from": "from please"},
		},
		{
			name:   "malformed date",
			modify: func(form *stayForm) { form.From = "01/01/2030" },
			fields: map[string]string{"from": "from please"},
		},
		{
			name:   "to equal to from",
			modify: func(form *stayForm) { form.To = form.From },
			fields: map[string]string{"to": "to after from"},
		},
		{
			name:   "to missing uses the generic field message",
			modify: func(form *stayForm) { form.To = "" },
			fields: map[string]string{"to": "to please"},
		},
		{
			name:   "missing from does not trigger the ordering rule",
			modify: func(form *stayForm) { form.From = "" },
			fields: map[string]string{"from": "from please"},
		},
		{
			name:   "unchecked flag falls back to the template",
			modify: func(form *stayForm) { form.Accepted = false },
			fields: map[string]string{"accepted": "accepted is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validStay()
			tt.modify(&form)

			err := validator.ValidateStruct(&form)

			if tt.fields == nil {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.fields, failure.GetFields(err))
		})
	}
}

func TestValidateStructReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&stayForm{})

	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"name":     "name please",
		"email":    "email please",
		"option":   "option please",
		"count":    "count please",
		"from":     "from please",
		"to":       "to please",
		"accepted": "accepted is required",
	}, failure.GetFields(err))
}

type trimmedForm struct {
	Name string `json:"name" validate:"required" msg:"name please"`
}

func (f *trimmedForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
}

func TestValidateNormalizesBeforeRules(t *testing.T) {
	var form trimmedForm

	err := validator.Validate(strings.NewReader(`{"name":"   "}`), &form)

	require.Error(t, err)
	assert.Equal(t, map[string]string{"name": "name please"}, failure.GetFields(err))

	require.NoError(t, validator.Validate(strings.NewReader(`{"name":"  Ada  "}`), &form))
	assert.Equal(t, "Ada", form.Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		code     int
		hasError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Ada","email":"ada@example.com","option":"beta","count":"1","from":"2030-01-01","to":"2030-01-02","accepted":true}`,
		},
		{
			name:     "invalid fields",
			jsonBody: `{"name":"Ada","email":"nope","option":"beta","count":"1","from":"2030-01-01","to":"2030-01-02","accepted":true}`,
			code:     http.StatusBadRequest,
			hasError: true,
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"name":"Ada","email":}`,
			code:     http.StatusBadRequest,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data stayForm

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if !tt.hasError {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}
