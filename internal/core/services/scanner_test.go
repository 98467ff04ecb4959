package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_LowercasesAndSplits(t *testing.T) {
	tokens := Scan("Hello, I am 171 CM\ttall\r\nOK")

	require.Equal(t, 7, tokens.Len())
	assert.Equal(t, "hello, i am 171 cm\ttall\r\nok", tokens.Text())
	assert.Equal(t, Token{Raw: "hello,", Word: "hello"}, tokens.At(0))
	assert.Equal(t, Token{Raw: "cm", Word: "cm"}, tokens.At(4))
	assert.Equal(t, Token{Raw: "ok", Word: "ok"}, tokens.At(6))
}

func TestScan_StripsTrailingPunctuationRun(t *testing.T) {
	tests := []struct {
		raw  string
		word string
	}{
		{"pounds,|.,;.", "pounds"},
		{"kms.,;", "kms"},
		{`feet"`, "feet"},
		{`inch\`, "inch"},
		{"m/", "m"},
		{"cm'", "cm"},
		{"kg:", "kg"},
		{",kg", ",kg"},  // leading punctuation is kept
		{"c!", "c!"},    // ! is not stripped
		{"k.g.", "k.g"}, // only the rightmost run goes
		{".,;", ""},     // all punctuation
		{"-30", "-30"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tokens := Scan(tt.raw)
			require.Equal(t, 1, tokens.Len())
			assert.Equal(t, tt.raw, tokens.At(0).Raw)
			assert.Equal(t, tt.word, tokens.At(0).Word)
		})
	}
}

func TestScan_OnlyASCIIWhitespaceSeparates(t *testing.T) {
	// U+00A0 (no-break space) is not ASCII whitespace.
	tokens := Scan("5 km 6 km")

	require.Equal(t, 3, tokens.Len())
	assert.Equal(t, "5 km", tokens.At(0).Raw)
}

func TestScan_Empty(t *testing.T) {
	assert.Equal(t, 0, Scan("").Len())
	assert.Equal(t, 0, Scan("   \n\t ").Len())
}

func TestTokens_AllIsRestartable(t *testing.T) {
	tokens := Scan("a b c")

	collect := func() []string {
		var out []string
		for _, tok := range tokens.All() {
			out = append(out, tok.Raw)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, collect())
	assert.Equal(t, []string{"a", "b", "c"}, collect())
}

func TestTokens_AllStopsEarly(t *testing.T) {
	tokens := Scan("a b c")

	var seen []int
	for i := range tokens.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}
