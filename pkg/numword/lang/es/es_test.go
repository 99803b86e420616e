package es

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
)

func text2digits(t *testing.T, text string) (string, error) {
	t.Helper()
	s := New()
	words := strings.Split(text, " ")
	b, err := lang.ExecGroup(s, words)
	if err != nil {
		return "", err
	}
	got, _ := s.FormatAndValue(b)
	return got, nil
}

func assertText2Digits(t *testing.T, text, want string) {
	t.Helper()
	got, err := text2digits(t, text)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplySteps(t *testing.T) {
	s := New()
	b := digitbuf.New()
	require.NoError(t, s.Apply("treinta", b))
	require.NoError(t, s.Apply("cuatro", b))
	assert.Error(t, s.Apply("veinte", b))
}

func TestApply(t *testing.T) {
	assertText2Digits(t, "cero", "0")
	assertText2Digits(t, "uno", "1")
	assertText2Digits(t, "diez", "10")
	assertText2Digits(t, "quince", "15")
	assertText2Digits(t, "diecinueve", "19")
	assertText2Digits(t, "veinte", "20")
	assertText2Digits(t, "veintiuno", "21")
	assertText2Digits(t, "treinta", "30")
	assertText2Digits(t, "treinta y uno", "31")
	assertText2Digits(t, "noventa y nueve", "99")
	assertText2Digits(t, "ochenta y cinco", "85")
	assertText2Digits(t, "cien", "100")
	assertText2Digits(t, "ciento uno", "101")
	assertText2Digits(t, "ciento quince", "115")
	assertText2Digits(t, "doscientos", "200")
	assertText2Digits(t, "mil", "1000")
	assertText2Digits(t, "mil uno", "1001")
	assertText2Digits(t, "dos mil", "2000")
	assertText2Digits(t, "dos mil noventa y nueve", "2099")
	assertText2Digits(t, "setenta y cinco mil", "75000")
	assertText2Digits(t, "mil novecientos veinte", "1920")
	assertText2Digits(t, "nueve mil novecientos noventa y nueve", "9999")
	assertText2Digits(t, "novecientos noventa y nueve mil novecientos noventa y nueve", "999999")
	assertText2Digits(t,
		"cincuenta y tres mil veinte millones doscientos cuarenta y tres mil setecientos veinticuatro",
		"53020243724")
	assertText2Digits(t,
		"cincuenta y un millones quinientos setenta y ocho mil trescientos dos",
		"51578302")
}

func TestVariants(t *testing.T) {
	assertText2Digits(t, "un millon", "1000000")
	assertText2Digits(t, "un millón", "1000000")
	assertText2Digits(t, "décimo primero", "11º")
	assertText2Digits(t, "decimoprimero", "11º")
	assertText2Digits(t, "undécimo", "11º")
	assertText2Digits(t, "décimo segundo", "12º")
	assertText2Digits(t, "decimosegundo", "12º")
	assertText2Digits(t, "duodécimo", "12º")
}

func TestOrdinals(t *testing.T) {
	assertText2Digits(t, "vigésimo cuarto", "24º")
	assertText2Digits(t, "vigésimo primero", "21º")
	assertText2Digits(t, "decimosexta", "16ª")
	assertText2Digits(t, "decimosextas", "16ᵃˢ")
	assertText2Digits(t, "decimosextos", "16ᵒˢ")
}

func TestDecimalSeparator(t *testing.T) {
	s := New()
	sep, ok := s.CheckDecimalSeparator("coma")
	assert.True(t, ok)
	assert.Equal(t, ',', sep)
}

func TestIsLinking(t *testing.T) {
	s := New()
	assert.True(t, s.IsLinking("y"))
	assert.False(t, s.IsLinking("banana"))
}
