package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "accented lower-case", in: "výroba", want: "VYROBA"},
		{name: "accented title-case", in: "Výroba", want: "VYROBA"},
		{name: "accented upper-case", in: "VÝROBA", want: "VYROBA"},
		{name: "surrounding whitespace", in: "  Vložit \t", want: "VLOZIT"},
		{name: "caron and ring", in: "nákup ůčš", want: "NAKUP UCS"},
		{name: "underscore survives", in: "po_pozn", want: "PO_POZN"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "unit code", in: " st ", want: "ST"},
		{name: "compatibility ligature", in: "ﬁle", want: "FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Výroba", "  prodej", "PO_Pozn", "Vydat", "Ďábel Ěšč", "pal", "ST", "", "Müller-Straße"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice should be stable", in)
	}
}

func TestNormalizeAll(t *testing.T) {
	assert.Equal(t, []string{"VLOZIT", "", "PAL"}, NormalizeAll([]string{"Vložit", " ", "pal"}))
	assert.Empty(t, NormalizeAll(nil))
}

func TestClean_DoesNotFoldCase(t *testing.T) {
	assert.Equal(t, "Dock á", Clean("  Dock á "))
}
