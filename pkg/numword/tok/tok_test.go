package tok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeBasic(t *testing.T) {
	toks := Tokenize("Here, some phrase: hello!")
	var words []string
	for _, tok := range toks {
		if tok.Kind == Word {
			words = append(words, tok.Raw)
		}
	}
	assert.Equal(t, []string{"Here", "some", "phrase", "hello"}, words)
}

func TestTokenizeHyphenAndApostrophe(t *testing.T) {
	toks := Tokenize("vingt-cinq l'un")
	words := Words(toks)
	assert.Equal(t, []string{"vingt-cinq", "l'un"}, words)
}

func TestTokenizeLowercasesWords(t *testing.T) {
	toks := Tokenize("Twenty-Four")
	assert.Equal(t, "twenty-four", toks[0].TextLowercase())
}

func TestTokenEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}
