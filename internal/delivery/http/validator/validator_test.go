package validator

import (
	"testing"

	domainerrors "justchoose/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"placeName" validate:"required,max=5"`
	Kind   string `json:"kind,omitempty" validate:"omitempty,oneof=geocode autocomplete"`
	UserID string `json:"userId" validate:"omitempty,uuid"`
	Limit  int    `query:"limit" validate:"min=1"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	testCases := []struct {
		name    string
		input   sampleRequest
		wantErr []string
	}{
		{
			name:  "valid",
			input: sampleRequest{Name: "Pho", Kind: "geocode", Limit: 1},
		},
		{
			name:    "required uses the json name",
			input:   sampleRequest{Limit: 1},
			wantErr: []string{"placeName is required"},
		},
		{
			name:    "query tag names the field",
			input:   sampleRequest{Name: "Pho"},
			wantErr: []string{"limit must be at least 1"},
		},
		{
			name:  "all failures are reported",
			input: sampleRequest{Name: "Pho Real", Kind: "nearby", UserID: "42", Limit: 1},
			wantErr: []string{
				"placeName must be at most 5",
				"kind must be one of [geocode autocomplete]",
				"userId must be a UUID",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.input)

			if len(tc.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestValidator_NonStructInput(t *testing.T) {
	err := New().Validate("not a struct")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
