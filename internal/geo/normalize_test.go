package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"São Paulo", "Sao Paulo"},
		{"Pará", "Para"},
		{"Rondônia", "Rondonia"},
		{"Açaí", "Acai"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, StripDiacritics(test.in), "StripDiacritics(%q)", test.in)
	}
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  São Paulo ", "SAO PAULO"},
		{"pará", "PARA"},
		{"CENTRO-OESTE", "CENTRO-OESTE"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, NormalizeToken(test.in), "NormalizeToken(%q)", test.in)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "brachyteles arachnoides", Fold("  Brachyteles Arachnoides "))
	assert.Equal(t, "acai", Fold("Açaí"))
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"pipe separated", "SP|RJ|MG", []string{"SP", "RJ", "MG"}},
		{"comma separated", "São Paulo, Rio de Janeiro", []string{"São Paulo", "Rio de Janeiro"}},
		{"mixed with blanks", "SP,, |RJ", []string{"SP", "RJ"}},
		{"empty descriptor", "", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SplitTokens(test.in)
			if test.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, test.want, got)
		})
	}
}
