package pt

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
	p := New()
	b, err := lang.ExecGroup(p, splitWords(text))
	if err != nil {
		return "", err
	}
	got, _ := p.FormatAndValue(b)
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

func TestApply(t *testing.T) {
	assertText2Digits(t, "um", "1")
	assertText2Digits(t, "oito", "8")
	assertText2Digits(t, "dez", "10")
	assertText2Digits(t, "onze", "11")
	assertText2Digits(t, "dezanove", "19")
	assertText2Digits(t, "vinte", "20")
	assertText2Digits(t, "vinte e um", "21")
	assertText2Digits(t, "trinta", "30")
	assertText2Digits(t, "trinta e um", "31")
	assertText2Digits(t, "trinta e dois", "32")
	assertText2Digits(t, "trinta e três", "33")
	assertText2Digits(t, "trinta e nove", "39")
	assertText2Digits(t, "noventa e nove", "99")
	assertText2Digits(t, "cem", "100")
	assertText2Digits(t, "cento e um", "101")
	assertText2Digits(t, "duzentos", "200")
	assertText2Digits(t, "duzentos e um", "201")
	assertText2Digits(t, "mil", "1000")
	assertText2Digits(t, "mil e um", "1001")
	assertText2Digits(t, "dois mil", "2000")
	assertText2Digits(t, "dois mil e noventa e nove", "2099")
	assertText2Digits(t, "nove mil novecentos e noventa e nove", "9999")
	assertText2Digits(t,
		"novecentos e noventa e nove mil novecentos e noventa e nove", "999999")
	assertText2Digits(t, "mil trezentos e vinte e cinco", "1325")
	assertText2Digits(t, "cem mil", "100000")
	assertText2Digits(t, "mil e duzentos", "1200")
}

func TestInvalid(t *testing.T) {
	assertInvalid(t, "mil mil duzentos")
	assertInvalid(t, "sessenta quinze")
	assertInvalid(t, "sessenta cem")
	assertInvalid(t, "sessenta quatro")
	assertInvalid(t, "cem e um")
	assertInvalid(t, "cento mil")
}

func TestZeroes(t *testing.T) {
	assertText2Digits(t, "zero", "0")
	assertText2Digits(t, "zero oito", "08")
	assertText2Digits(t, "zero um", "01")
	assertText2Digits(t, "zero uma", "01")
	assertText2Digits(t, "zero zero cento e vinte e cinco", "00125")
	assertInvalid(t, "cinco zero")
	assertInvalid(t, "cinquenta zero três")
	assertInvalid(t, "cinquenta e zero três")
	assertInvalid(t, "cinquenta e zero")
	assertInvalid(t, "cinquenta e três zero")
	assertInvalid(t, "dez zero")
}

func TestOrdinals(t *testing.T) {
	assertText2Digits(t, "vigésimo quarto", "24º")
	assertText2Digits(t, "vigésimo primeiro", "21º")
	assertText2Digits(t, "centésimo primeiro", "101º")
	assertText2Digits(t, "décima sexta", "16ª")
	assertText2Digits(t, "décimas sextas", "16ᵃˢ")
	assertText2Digits(t, "décimos sextos", "16ᵒˢ")
}

func TestDecimalSeparator(t *testing.T) {
	p := New()
	sep, ok := p.CheckDecimalSeparator("vírgula")
	assert.True(t, ok)
	assert.Equal(t, ',', sep)
}

func TestIsLinking(t *testing.T) {
	p := New()
	assert.True(t, p.IsLinking("então"))
	assert.False(t, p.IsLinking("banana"))
}
