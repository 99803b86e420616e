package nl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numword/pkg/numword/lang"
)

func splitWords(text string) []string {
	return strings.Fields(text)
}

func text2digits(t *testing.T, text string) (string, error) {
	t.Helper()
	n := New()
	b, err := lang.ExecGroup(n, splitWords(strings.ToLower(text)))
	if err != nil {
		return "", err
	}
	got, _ := n.FormatAndValue(b)
	return got, nil
}

func assertText2Digits(t *testing.T, text, want string) {
	t.Helper()
	got, err := text2digits(t, text)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func assertInvalid(t *testing.T, text string) {
	t.Helper()
	_, err := text2digits(t, text)
	assert.Error(t, err)
}

func TestBasic(t *testing.T) {
	assertText2Digits(t, "twee", "2")
	assertText2Digits(t, "tweeëndertig", "32")
	assertText2Digits(t, "drieenzeventig", "73")
	assertText2Digits(t, "negenenzeventig", "79")
	assertText2Digits(t, "drieënveertig", "43")
	assertText2Digits(t, "eenentachtig", "81")
	assertText2Digits(t, "honderdtweeëndertig", "132")
	assertText2Digits(t, "negentienhonderd negentig", "1990")
	assertText2Digits(t, "tweehonderdtweeëndertig", "232")
	assertText2Digits(t, "negenhonderddrieëntachtig", "983")
	assertText2Digits(t, "tweeduizend", "2000")
	assertText2Digits(t, "zevenhonderdtweeënveertigduizendnegenhonderdzesentachtig", "742986")
}

func TestApply(t *testing.T) {
	assertText2Digits(t, "tweeëntwintig", "22")
	assertText2Digits(t, "drieëntwintig", "23")
	assertText2Digits(t, "tachtig", "80")
	assertText2Digits(t, "vijfentachtig", "85")
	assertText2Digits(t, "eenentachtig", "81")
	assertText2Digits(t, "achtentachtig", "88")
	assertText2Digits(t, "achtennegentig", "98")
	assertText2Digits(t, "vijftien", "15")
	assertText2Digits(t, "een miljard", "1000000000")
	assertText2Digits(t, "vijfentwintig miljoen", "25000000")
	assertText2Digits(t, "één miljard vijfentwintig miljoen", "1025000000")
	assertText2Digits(t, "éénmiljard vijfentwintigmiljoen", "1025000000")
	assertText2Digits(t,
		"drieënvijftigmiljard tweehonderddrieënveertigduizend zevenhonderdvierentwintig",
		"53000243724")
	assertText2Digits(t,
		"eenenvijftigmiljoen vijfhonderdachtenzeventigduizend driehonderdtwee",
		"51578302")
	assertText2Digits(t, "vijfenzeventigduizend", "75000")
	assertText2Digits(t, "vijfenzeventig duizend", "75000")
	assertText2Digits(t, "duizend negenhonderd twintig", "1920")
}

func TestMultiplesOfHundred(t *testing.T) {
	assertText2Digits(t, "negentienhonderd", "1900")
	assertText2Digits(t, "negentienhonderd drieenzeventig", "1973")
	assertText2Digits(t, "negentienhonderd twintig", "1920")
	assertText2Digits(t, "negentienhonderdtwintig", "1920")
	assertText2Digits(t, "vijfenzeventighonderd", "7500")
}

func TestOrdinals(t *testing.T) {
	assertText2Digits(t, "achtste", "8e")
	assertText2Digits(t, "vijfentwintigste", "25e")
	assertText2Digits(t, "eenentwintigste", "21e")
}

func TestZeroes(t *testing.T) {
	assertText2Digits(t, "nul", "0")
	assertText2Digits(t, "nul acht", "08")
	assertText2Digits(t, "nul nul honderdvijfentwintig", "00125")
	assertInvalid(t, "vijf nul")
	assertInvalid(t, "vijftignuldrie")
	assertInvalid(t, "tiennul")
}

func TestInvalid(t *testing.T) {
	assertInvalid(t, "duizend duizend tweehonderd")
	assertInvalid(t, "tien twee")
	assertInvalid(t, "twintigste vijf")
	assertInvalid(t, "eentwintig")
	assertInvalid(t, "hunderd hunderd")
}

func TestDecimalSeparator(t *testing.T) {
	n := New()
	sep, ok := n.CheckDecimalSeparator("komma")
	assert.True(t, ok)
	assert.Equal(t, ',', sep)
}

func TestIsLinking(t *testing.T) {
	n := New()
	assert.True(t, n.IsLinking("dus"))
	assert.False(t, n.IsLinking("banana"))
}
