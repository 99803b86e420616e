package de

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numword/pkg/numword/lang"
)

func text2digits(t *testing.T, text string) (string, error) {
	t.Helper()
	g := New()
	words := strings.Split(strings.ToLower(text), " ")
	b, err := lang.ExecGroup(g, words)
	if err != nil {
		return "", err
	}
	got, _ := g.FormatAndValue(b)
	return got, nil
}

func assertText2Digits(t *testing.T, text, want string) {
	t.Helper()
	got, err := text2digits(t, text)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApply(t *testing.T) {
	assertText2Digits(t, "dreiundfünfzig Milliarden zweihundertdreiundvierzigtausendsiebenhundertvierundzwanzig", "53000243724")
	assertText2Digits(t, "einundzwanzig", "21")
	assertText2Digits(t, "zweiundvierzig", "42")
	assertText2Digits(t, "dreiundneunzig", "93")
	assertText2Digits(t, "hundert", "100")
	assertText2Digits(t, "einhundertfünfzehn", "115")
	assertText2Digits(t, "fünfzehn", "15")
	assertText2Digits(t, "null null einhundertfünfundzwanzig", "00125")
}

func TestEinsAlwaysFreezes(t *testing.T) {
	// "eins" terminates the number; a following word cannot extend it.
	_, err := text2digits(t, "eins zwei")
	assert.Error(t, err)
}

func TestOrdinals(t *testing.T) {
	assertText2Digits(t, "einundzwanzigste", "21.")
	assertText2Digits(t, "zwanzigste", "20.")
	assertText2Digits(t, "dritte", "3.")
	assertText2Digits(t, "hundertste", "100.")
}

func TestDecimalSeparator(t *testing.T) {
	g := New()
	sep, ok := g.CheckDecimalSeparator("komma")
	assert.True(t, ok)
	assert.Equal(t, ',', sep)
}

func TestIsLinking(t *testing.T) {
	g := New()
	assert.True(t, g.IsLinking("also"))
	assert.False(t, g.IsLinking("banane"))
}
