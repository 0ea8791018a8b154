package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func neverExists(string) (bool, error) { return false, nil }

func TestGenerateIDFormat(t *testing.T) {
	id, err := GenerateID(OrderIDPrefix, neverExists)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "order_"))

	suffix := strings.TrimPrefix(id, "order_")
	assert.Len(t, suffix, idLength)
	for _, r := range suffix {
		assert.Contains(t, idAlphabet, string(r))
	}
}

func TestGenerateIDUniquePerCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateID(PaymentIDPrefix, neverExists)
		assert.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateIDRetriesOnCollision(t *testing.T) {
	calls := 0
	exists := func(id string) (bool, error) {
		calls++
		return calls < 3, nil
	}

	id, err := GenerateID(PaymentIDPrefix, exists)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "pay_"))
	assert.Equal(t, 3, calls)
}

func TestGenerateIDPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	_, err := GenerateID(OrderIDPrefix, func(string) (bool, error) {
		return false, storeErr
	})
	assert.ErrorIs(t, err, storeErr)
}
