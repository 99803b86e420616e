package digitbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutSingle(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("5")))
}

func TestPutTwiceOK(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("50")))
	require.NoError(t, b.Put([]byte("5")))
	assert.Equal(t, "55", b.Render())
}

func TestPutTwiceOK2(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("500")))
	require.NoError(t, b.Put([]byte("55")))
	assert.Equal(t, "555", b.Render())
}

func TestPutTwiceOverlap(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("5")))
	assert.Error(t, b.Put([]byte("22")))
	assert.Error(t, b.Put([]byte("2")))
}

func TestPutTwiceNoSlot(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("52")))
	assert.Error(t, b.Put([]byte("2")))
}

func TestZero(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("0")))
	assert.NoError(t, b.Put([]byte("0")))
	assert.NoError(t, b.Put([]byte("5")))
}

func TestZeroes(t *testing.T) {
	b := New()
	assert.Error(t, b.Put([]byte("00")))
	assert.Error(t, b.Put([]byte("000")))
}

func TestPeek1(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("5")))
	assert.Equal(t, "5", string(b.Peek(1)))
	assert.Equal(t, "5", string(b.Peek(2)))
	assert.Equal(t, "5", string(b.Peek(3)))
}

func TestPeek2(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("56")))
	assert.Equal(t, "6", string(b.Peek(1)))
	assert.Equal(t, "56", string(b.Peek(2)))
	assert.Equal(t, "56", string(b.Peek(3)))
}

func TestFPut(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("5")))
	require.NoError(t, b.FPut([]byte("8")))
	require.NoError(t, b.FPut([]byte("73")))
	require.NoError(t, b.FPut([]byte("5")))
}

func TestShiftSingle(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("5")))
	require.NoError(t, b.Shift(3))
	assert.Equal(t, "5000", string(b.Peek(4)))
}

func TestShiftShorter(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("51")))
	require.NoError(t, b.Shift(2))
	assert.Equal(t, "5100", string(b.Peek(4)))
}

func TestShiftSubsliceOK(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("50032")))
	require.NoError(t, b.Shift(2))
	assert.Equal(t, "53200", string(b.Peek(6)))
}

func TestShiftSubsliceOK2(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("2007")))
	require.NoError(t, b.Shift(2))
	assert.Equal(t, "2700", string(b.Peek(6)))
}

func TestShiftSubsliceOverlap(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("51032")))
	assert.Error(t, b.Shift(2))
}

func TestShiftSubsliceOverlapShort(t *testing.T) {
	b := New()
	require.NoError(t, b.FPut([]byte("532")))
	assert.Error(t, b.Shift(2))
}

func TestShiftEmpty(t *testing.T) {
	b := New()
	require.NoError(t, b.Shift(2))
	assert.Equal(t, "100", b.Render())
}

func TestShiftFullZeroes(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("1000")))
	require.NoError(t, b.Shift(2))
	assert.Equal(t, "1100", b.Render())
}

// CompleteExample builds 2792 the way "deux mille sept cent quatre-vingt-douze"
// would: put(2), shift(3), put(7), shift(2), put(90), put(2).
func TestCompleteExample(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("2")))
	require.NoError(t, b.Shift(3))
	require.NoError(t, b.Put([]byte("7")))
	require.NoError(t, b.Shift(2))
	require.NoError(t, b.Put([]byte("90")))
	require.NoError(t, b.Put([]byte("2")))
	assert.Equal(t, "2792", string(b.Peek(5)))
}

func TestLeadingZeros(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("0")))
	require.NoError(t, b.Put([]byte("0")))
	require.NoError(t, b.Shift(2))
	require.NoError(t, b.Put([]byte("25")))
	assert.Equal(t, "00125", b.Render())
}

func TestPutDigitAt(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("10")))
	require.NoError(t, b.PutDigitAt('5', 0))
	assert.Equal(t, "15", b.Render())

	b2 := New()
	require.NoError(t, b2.PutDigitAt('2', 1))
	assert.Equal(t, "20", b2.Render())
}

func TestFreezeMonotonicity(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("5")))
	b.Marker = Ordinal("th")
	b.Freeze()
	assert.ErrorIs(t, b.Put([]byte("0")), Frozen)
	assert.ErrorIs(t, b.Shift(1), Frozen)
	assert.ErrorIs(t, b.Push([]byte("1")), Frozen)
	assert.ErrorIs(t, b.FPut([]byte("1")), Frozen)
	assert.ErrorIs(t, b.PutDigitAt('1', 0), Frozen)
}

func TestIsFreeAndRangeFree(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("5")))
	assert.False(t, b.IsFree(2))
	require.NoError(t, b.Shift(3))
	assert.False(t, b.IsRangeFree(3, 3))
	assert.True(t, b.IsRangeFree(0, 2))
}

func TestBodyNeverStartsWithZero(t *testing.T) {
	b := New()
	require.NoError(t, b.Put([]byte("0")))
	require.NoError(t, b.Shift(2))
	require.NoError(t, b.Put([]byte("25")))
	rendered := b.Render()
	require.NotEmpty(t, rendered)
	// leading zeros render as literal '0' characters, but the body itself
	// (after stripping them) must never start with '0'.
	body := []byte(rendered)
	for len(body) > 0 && body[0] == '0' {
		body = body[1:]
	}
	if len(body) > 0 {
		assert.NotEqual(t, byte('0'), body[0])
	}
}
