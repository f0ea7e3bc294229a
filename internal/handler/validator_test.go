package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() ProfileBody {
	return ProfileBody{
		DiameterInches: 8,
		Material:       "terracotta",
		Light:          "bright_indirect",
		Category:       "succulent",
		Season:         "summer",
		Environment:    "indoor",
	}
}

func TestValidator_ProfileEnums(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		mutate  func(p *ProfileBody)
		wantErr bool
	}{
		{"valid profile", func(*ProfileBody) {}, false},
		{"optional enums may be empty", func(p *ProfileBody) {
			p.Material = ""
			p.Category = ""
		}, false},
		{"zero diameter allowed", func(p *ProfileBody) { p.DiameterInches = 0 }, false},
		{"negative diameter", func(p *ProfileBody) { p.DiameterInches = -1 }, true},
		{"negative height", func(p *ProfileBody) {
			h := -2.0
			p.HeightInches = &h
		}, true},
		{"unknown material", func(p *ProfileBody) { p.Material = "glass" }, true},
		{"unknown light", func(p *ProfileBody) { p.Light = "blinding" }, true},
		{"missing light", func(p *ProfileBody) { p.Light = "" }, true},
		{"unknown category", func(p *ProfileBody) { p.Category = "tree" }, true},
		{"enum values are case sensitive", func(p *ProfileBody) { p.Season = "Summer" }, true},
		{"unknown fertilizer form", func(p *ProfileBody) { p.FertilizerForm = "spray" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := v.ValidateStruct(ProfileRequest{Profile: p})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError_UsesJSONPaths(t *testing.T) {
	p := validProfile()
	p.Light = "blinding"
	p.Season = ""

	err := GetValidator().ValidateStruct(ProfileRequest{Profile: p})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, `Unknown light "blinding"`, fields["profile.light"])
	assert.Equal(t, "This field is required", fields["profile.season"])
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
