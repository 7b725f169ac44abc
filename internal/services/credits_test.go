package services_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolkithub/accounts/internal/services"
)

func TestConsumeCredits(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.SaveProfile(db, "user-1", services.ProfileInput{
		DisplayName: "User One",
	}, 100)
	require.NoError(t, err)

	// 40 of 100 fits
	consumed, err := services.ConsumeCredits(db, "user-1", 40)
	require.NoError(t, err)
	assert.True(t, consumed)

	// 70 more would exceed the allowance; balance stays at 60
	consumed, err = services.ConsumeCredits(db, "user-1", 70)
	require.NoError(t, err)
	assert.False(t, consumed)

	status, err := services.GetCreditBalance(db, "user-1")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, uint64(40), status.CreditsConsumed)
	assert.Equal(t, uint64(60), status.CreditsRemaining)

	// 50 still fits, leaving 10
	consumed, err = services.ConsumeCredits(db, "user-1", 50)
	require.NoError(t, err)
	assert.True(t, consumed)

	status, err = services.GetCreditBalance(db, "user-1")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, uint64(90), status.CreditsConsumed)
	assert.Equal(t, uint64(10), status.CreditsRemaining)
}

func TestConsumeCreditsExactBalance(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.SaveProfile(db, "user-exact", services.ProfileInput{}, 25)
	require.NoError(t, err)

	// Consuming the exact remaining balance succeeds
	consumed, err := services.ConsumeCredits(db, "user-exact", 25)
	require.NoError(t, err)
	assert.True(t, consumed)

	status, err := services.GetCreditBalance(db, "user-exact")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, uint64(0), status.CreditsRemaining)

	// Nothing left
	consumed, err = services.ConsumeCredits(db, "user-exact", 1)
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestConsumeCreditsHugeAmount(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.SaveProfile(db, "user-huge", services.ProfileInput{}, 100)
	require.NoError(t, err)

	consumed, err := services.ConsumeCredits(db, "user-huge", 40)
	require.NoError(t, err)
	require.True(t, consumed)

	// An amount large enough to wrap the consumed+amount sum must still be
	// refused, with the ledger untouched
	consumed, err = services.ConsumeCredits(db, "user-huge", math.MaxUint64)
	require.NoError(t, err)
	assert.False(t, consumed)

	consumed, err = services.ConsumeCredits(db, "user-huge", math.MaxUint64-40)
	require.NoError(t, err)
	assert.False(t, consumed)

	status, err := services.GetCreditBalance(db, "user-huge")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, uint64(40), status.CreditsConsumed)
	assert.Equal(t, uint64(60), status.CreditsRemaining)
}

func TestConsumeCreditsNoProfile(t *testing.T) {
	db := setupTestDB(t)

	// No profile means no balance; refused without error
	consumed, err := services.ConsumeCredits(db, "nobody", 1)
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestGetCreditBalanceAbsent(t *testing.T) {
	db := setupTestDB(t)

	status, err := services.GetCreditBalance(db, "nobody")
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestListAllCreditBalances(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.SaveProfile(db, "b-user", services.ProfileInput{DisplayName: "B"}, 50)
	require.NoError(t, err)
	_, err = services.SaveProfile(db, "a-user", services.ProfileInput{DisplayName: "A"}, 100)
	require.NoError(t, err)

	consumed, err := services.ConsumeCredits(db, "a-user", 30)
	require.NoError(t, err)
	require.True(t, consumed)

	statuses, err := services.ListAllCreditBalances(db)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	// Ordered by identity
	assert.Equal(t, "a-user", statuses[0].Identity)
	assert.Equal(t, uint64(70), statuses[0].CreditsRemaining)
	assert.Equal(t, "b-user", statuses[1].Identity)
	assert.Equal(t, uint64(50), statuses[1].CreditsRemaining)
}
