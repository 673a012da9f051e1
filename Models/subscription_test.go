package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlementRequiresSession(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	trial := now.Add(-time.Hour)

	assert.Equal(t, Locked, ComputeEntitlement(false, &trial, nil, now))
	assert.Equal(t, Unlocked, ComputeEntitlement(true, &trial, nil, now))
}

func TestEntitlementTrialWindow(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Unlocked throughout [start, start+1 month], locked strictly after.
	assert.Equal(t, Unlocked, ComputeEntitlement(true, &start, nil, start))
	assert.Equal(t, Unlocked, ComputeEntitlement(true, &start, nil, start.AddDate(0, 0, 15)))
	assert.Equal(t, Unlocked, ComputeEntitlement(true, &start, nil, start.AddDate(0, 1, 0)))
	assert.Equal(t, Locked, ComputeEntitlement(true, &start, nil, start.AddDate(0, 1, 0).Add(time.Second)))
}

func TestEntitlementSubscriptionWindow(t *testing.T) {
	trial := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := trial.AddDate(0, 3, 0) // trial long over

	sub := &Subscription{
		Start:  "2024-03-01T00:00:00Z",
		End:    "2024-06-01T00:00:00Z",
		Months: 3,
		Price:  899,
	}
	assert.Equal(t, Unlocked, ComputeEntitlement(true, &trial, sub, now))
	assert.Equal(t, Locked, ComputeEntitlement(true, &trial, sub, time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC)))

	assert.Equal(t, Locked, ComputeEntitlement(true, &trial, nil, now))

	// A subscription with an unreadable end never unlocks.
	broken := &Subscription{End: "garbage"}
	assert.Equal(t, Locked, ComputeEntitlement(true, &trial, broken, now))

	// No trial stamp at all: only the subscription counts.
	assert.Equal(t, Unlocked, ComputeEntitlement(true, nil, sub, now))
	assert.Equal(t, Locked, ComputeEntitlement(true, nil, nil, now))
}

func TestPurchaseSubscriptionSetsWindowFromNow(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	sub, err := store.PurchaseSubscription(3, 899, at)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00:00Z", sub.Start)
	assert.Equal(t, "2024-08-01T10:00:00Z", sub.End)
	assert.Equal(t, 3, sub.Months)
	assert.Equal(t, 899.0, sub.Price)
}

func TestPurchaseBeforeExpiryResetsNotExtends(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := store.PurchaseSubscription(3, 899, at)
	require.NoError(t, err)

	// One month in, buy six more months: the window restarts from the second
	// purchase, it does not stack on the two months still remaining.
	second := at.AddDate(0, 1, 0)
	sub, err := store.PurchaseSubscription(6, 1699, second)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T10:00:00Z", sub.Start)
	assert.Equal(t, "2024-12-01T10:00:00Z", sub.End)

	stored := store.Subscription()
	require.NotNil(t, stored)
	assert.Equal(t, *stored, sub, "purchase overwrites, never appends")
}

func TestPurchaseSubscriptionValidation(t *testing.T) {
	store := newTestStore(t)
	var validationErr ValidationError

	_, err := store.PurchaseSubscription(0, 899, time.Now())
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.PurchaseSubscription(3, -1, time.Now())
	assert.ErrorAs(t, err, &validationErr)

	assert.Nil(t, store.Subscription())
}

func TestEntitlementAtUsesStoreState(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// No trial, no subscription: locked even with a session.
	assert.Equal(t, Locked, store.EntitlementAt(true, now))

	store.StampTrialIfAbsent(now)
	assert.Equal(t, Unlocked, store.EntitlementAt(true, now.AddDate(0, 0, 20)))
	assert.Equal(t, Locked, store.EntitlementAt(true, now.AddDate(0, 2, 0)))

	_, err := store.PurchaseSubscription(3, 899, now.AddDate(0, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, Unlocked, store.EntitlementAt(true, now.AddDate(0, 4, 0)))
	assert.Equal(t, Locked, store.EntitlementAt(true, now.AddDate(0, 6, 0)))
}
