package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsOf(t *testing.T) {
	assert := assert.New(t)

	table := map[int]Status{
		0:    STATUS_Z,
		1:    STATUS_NONE,
		127:  STATUS_NONE,
		128:  STATUS_V,
		1000: STATUS_V,
		-1:   STATUS_N,
		-128: STATUS_N,
		-129: STATUS_N,
		-999: STATUS_N,
	}

	for value, status := range table {
		assert.Equal(status, FlagsOf(value), value)
	}
}

func TestStatusString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("000", STATUS_NONE.String())
	assert.Equal("100", STATUS_Z.String())
	assert.Equal("010", STATUS_N.String())
	assert.Equal("001", STATUS_V.String())

	assert.True(STATUS_Z.Zero())
	assert.False(STATUS_Z.Negative())
	assert.True(STATUS_N.Negative())
	assert.True(STATUS_V.Overflow())
	assert.False(STATUS_NONE.Overflow())
}

func FuzzFlags(f *testing.F) {
	for _, seed := range []int{0, 1, -1, MAX_INT, MAX_INT + 1, MIN_INT, MIN_INT - 1} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, value int) {
		assert := assert.New(t)

		status := FlagsOf(value)

		set := 0
		for _, flag := range []bool{status.Zero(), status.Negative(), status.Overflow()} {
			if flag {
				set++
			}
		}
		assert.LessOrEqual(set, 1)

		assert.Equal(value == 0, status.Zero())
		assert.Equal(value < 0, status.Negative())
		assert.Equal(value > MAX_INT, status.Overflow())
		assert.Equal(status, FlagsOf(value))
	})
}
