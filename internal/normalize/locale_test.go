package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain english", raw: "en", want: "en"},
		{name: "upper case", raw: "EN", want: "en"},
		{name: "regioned spanish", raw: "es-MX", want: "es"},
		{name: "regioned french", raw: "fr-FR", want: "fr"},
		{name: "german", raw: "de-DE", want: "de"},
		{name: "italian", raw: "it", want: "it"},
		{name: "long form", raw: "english", want: "en"},
		{name: "blank", raw: "", want: "en"},
		{name: "whitespace only", raw: "   ", want: "en"},
		{name: "no match", raw: "zh-CN", want: "en"},
		{name: "set order wins over string order", raw: "de-fr", want: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLocale(tt.raw))
		})
	}
}

// The closure property: every output is a member of the supported set.
func TestNormalizeLocale_AlwaysSupported(t *testing.T) {
	supported := map[string]bool{"en": true, "es": true, "fr": true, "de": true, "it": true}
	inputs := []string{"", "en-US", "ES", "pt-BR", "ja", "Deutsch", "italiano", "ガラクタ", "fr, es"}
	for _, raw := range inputs {
		assert.True(t, supported[NormalizeLocale(raw)], "input %q normalized outside the supported set", raw)
	}
}
