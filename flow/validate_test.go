package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"valid", "15.05.1990", true},
		{"valid leap day", "29.02.2020", true},
		{"iso format", "2024-01-01", false},
		{"missing zero padding", "5.5.1990", false},
		{"two digit year", "15.05.90", false},
		{"impossible day", "32.01.2020", false},
		{"impossible month", "15.13.2020", false},
		{"non leap february", "29.02.2021", false},
		{"free text", "завтра", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(KindDate, tt.raw)
			assert.Equal(t, tt.ok, res.Ok)
			if tt.ok {
				assert.Equal(t, tt.raw, res.Value)
			} else {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestValidateTextAcceptsAnything(t *testing.T) {
	for _, raw := range []string{"Иванов Иван", "", "   ", "2024-01-01"} {
		res := Validate(KindText, raw)
		assert.True(t, res.Ok)
		assert.Equal(t, raw, res.Value)
	}
}
