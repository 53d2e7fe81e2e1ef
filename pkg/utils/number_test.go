package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 61.5, RoundWithOneDecimalPlace(61.53846153846154))
	assert.Equal(t, 61.6, RoundWithOneDecimalPlace(61.55))
	assert.Equal(t, 100.0, RoundWithOneDecimalPlace(100.0))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 61.54, RoundWithTwoDecimalPlace(61.53846153846154))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
