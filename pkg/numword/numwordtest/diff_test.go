package numwordtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffStringsIdentical(t *testing.T) {
	assert.Empty(t, DiffStrings("same text\n", "same text\n"))
}

func TestDiffStringsReportsMismatch(t *testing.T) {
	d := DiffStrings("1 vaches, 12 poulets\n", "1 vaches, 13 poulets\n")
	assert.Contains(t, d, "-1 vaches, 12 poulets")
	assert.Contains(t, d, "+1 vaches, 13 poulets")
}
