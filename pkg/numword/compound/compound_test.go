package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGerman(t *testing.T) {
	dict := Dictionary{
		"drei", "und", "vierzig", "zwei", "hundert", "tausend", "sieben", "vier", "zwanzig",
	}
	parts, ok := dict.Split("zweihundertdreiundvierzigtausendsiebenhundertvierundzwanzig")
	assert.True(t, ok)
	assert.Equal(t, []string{
		"zwei", "hundert", "drei", "und", "vierzig", "tausend",
		"sieben", "hundert", "vier", "und", "zwanzig",
	}, parts)
}

func TestSplitUnknownSuffix(t *testing.T) {
	dict := Dictionary{"zwei", "hundert"}
	_, ok := dict.Split("zweihundertneun")
	assert.False(t, ok)
}

func TestSplitAroundItalian(t *testing.T) {
	dict := Dictionary{"cento", "mila", "mille", "venti", "quaranta"}
	parts, found := dict.SplitAround("duecentoquarantaquattromila")
	assert.True(t, found)
	assert.Equal(t, []string{"due", "cento", "quaranta", "quattro", "mila"}, parts)
}

func TestSplitAroundNoSeparator(t *testing.T) {
	dict := Dictionary{"cento", "mila", "mille"}
	parts, found := dict.SplitAround("cinque")
	assert.False(t, found)
	assert.Equal(t, []string{"cinque"}, parts)
}

func TestSplitLeftmostLongest(t *testing.T) {
	dict := Dictionary{"ein", "eins", "und", "zwanzig"}
	parts, ok := dict.Split("einundzwanzig")
	assert.True(t, ok)
	assert.Equal(t, []string{"ein", "und", "zwanzig"}, parts)
}
