package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptRejectsBadCost(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost - 1)
	assert.Error(t, err)
	_, err = NewBcrypt(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestHashAndVerify(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost) // Keep tests fast
	require.NoError(t, err)

	for _, password := range []string{"testpass", "", "päss wörd", strings.Repeat("a", 72)} {
		hashed, err := h.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hashed)
		assert.True(t, h.Verify(password, hashed), "password %q should verify", password)
		assert.False(t, h.Verify(password+"x", hashed), "altered password %q should not verify", password)
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same", first))
	assert.True(t, h.Verify("same", second))
}

func TestHashEncodesCost(t *testing.T) {
	h, err := NewBcrypt(5)
	require.NoError(t, err)

	hashed, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
	assert.Equal(t, 5, h.Cost())
}

func TestHashTooLong(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerifyRejectsPasswordsSharingPrefix(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	stored := strings.Repeat("a", MaxPasswordBytes)
	hashed, err := h.Hash(stored)
	require.NoError(t, err)

	assert.True(t, h.Verify(stored, hashed))
	assert.False(t, h.Verify(stored+"b", hashed))
	assert.False(t, h.Verify(stored+strings.Repeat("a", 10), hashed))
}

func TestVerifyMalformedHash(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, h.Verify("pw", "not-a-hash"))
	assert.False(t, h.Verify("pw", ""))
}
