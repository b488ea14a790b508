package models

import (
	"strings"
	"testing"

	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestSection_CreationWithValidData(t *testing.T) {
	section := Section{
		ID:          int64Ptr(1),
		Name:        "Personal Information",
		Description: strPtr("Fields related to person identity"),
		Order:       0,
		FormID:      1,
	}

	require.NoError(t, section.Validate())
	assert.Equal(t, int64(1), section.IDValue())
	assert.Equal(t, "Personal Information", section.Name)
	assert.Equal(t, "Fields related to person identity", *section.Description)
	assert.Equal(t, 0, section.Order)
	assert.Equal(t, int64(1), section.FormID)
}

func TestSection_Validate(t *testing.T) {
	tests := []struct {
		name      string
		section   Section
		wantField string
		wantMsg   string
	}{
		{
			name:    "boundary name and description",
			section: Section{Name: strings.Repeat("A", 100), Description: strPtr(strings.Repeat("d", 500)), Order: 0},
		},
		{
			name:    "multibyte name counted in characters",
			section: Section{Name: strings.Repeat("é", 100), Order: 3},
		},
		{
			name:      "empty name",
			section:   Section{Name: "", Order: 0, FormID: 1},
			wantField: "name",
			wantMsg:   "Section name is required and must be <= 100 chars",
		},
		{
			name:      "long name",
			section:   Section{Name: strings.Repeat("A", 101), Order: 0, FormID: 1},
			wantField: "name",
			wantMsg:   "Section name is required and must be <= 100 chars",
		},
		{
			name:      "long description",
			section:   Section{Name: "Valid Name", Description: strPtr(strings.Repeat("A", 501)), Order: 0, FormID: 1},
			wantField: "description",
			wantMsg:   "Section description must be <= 500 chars",
		},
		{
			name:      "negative order",
			section:   Section{Name: "Valid Name", Order: -1, FormID: 1},
			wantField: "order",
			wantMsg:   "Section order must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.section.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestSection_IDValueUnset(t *testing.T) {
	s := Section{Name: "x"}
	assert.Equal(t, int64(0), s.IDValue())
}
