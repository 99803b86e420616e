package fr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
)

func splitWords(s string) []string {
	return strings.Split(s, " ")
}

func text2digits(t *testing.T, text string) (string, error) {
	t.Helper()
	f := New()
	b, err := lang.ExecGroup(f, splitWords(text))
	if err != nil {
		return "", err
	}
	got, _ := f.FormatAndValue(b)
	return got, nil
}

func assertText2Digits(t *testing.T, text, want string) {
	t.Helper()
	got, err := text2digits(t, text)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApply(t *testing.T) {
	assertText2Digits(t, "cinquante-trois milliards deux cent quarante-trois mille sept cent vingt-quatre", "53000243724")
	assertText2Digits(t, "quatre-vingts", "80")
	assertText2Digits(t, "quatre-vingt-un", "81")
	assertText2Digits(t, "quatre-vingt-onze", "91")
	assertText2Digits(t, "soixante-dix", "70")
	assertText2Digits(t, "soixante et onze", "71")
	assertText2Digits(t, "soixante-seize", "76")
	assertText2Digits(t, "quinze", "15")
	assertText2Digits(t, "cent quinze", "115")
	assertText2Digits(t, "mille neuf cent vingt", "1920")
}

func TestOrdinals(t *testing.T) {
	assertText2Digits(t, "premier", "1er")
	assertText2Digits(t, "vingt et unième", "21e")
	assertText2Digits(t, "cinquantième", "50e")
	assertText2Digits(t, "second", "2e")
}

func TestDecimalSeparator(t *testing.T) {
	f := New()
	sep, ok := f.CheckDecimalSeparator("virgule")
	assert.True(t, ok)
	assert.Equal(t, ',', sep)
}

func TestIsLinking(t *testing.T) {
	f := New()
	assert.True(t, f.IsLinking("et"))
	assert.True(t, f.IsLinking("voilà"))
	assert.False(t, f.IsLinking("banane"))
}

func TestNeufAmbiguityUnaffected(t *testing.T) {
	// "neuf" meaning "new" in "un logement neuf" is resolved upstream by the
	// scanner's contiguity rules, not by the interpreter; Apply alone always
	// reads "neuf" as the digit 9.
	f := New()
	b := digitbuf.New()
	require.NoError(t, f.Apply("neuf", b))
	assert.Equal(t, "9", b.Render())
}
