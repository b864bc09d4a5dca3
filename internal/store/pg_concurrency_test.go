package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintmarket/marketplace/internal/domain"
)

// These tests need real parallel connections, so they run against testDB
// directly instead of the rollback-isolated store from initPGTestDB. Each
// test uses a fresh address, so leftover rows do not affect other tests.

func TestConcurrentFirstChallenge(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}
	store := NewPGStore(testDB)
	ctx := context.Background()
	address := buildTestAddress()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = store.RotateNonce(ctx, address, fmt.Sprintf("nonce-%d", i))
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	principal, err := store.GetPrincipalByAddress(ctx, address)
	require.NoError(t, err)
	require.NotNil(t, principal)
	require.NotNil(t, principal.Nonce)
	assert.Regexp(t, `^nonce-[0-7]$`, *principal.Nonce)
}

func TestConcurrentNonceConsume(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}
	store := NewPGStore(testDB)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	address := buildTestAddress()
	_, err := store.RotateNonce(ctx, address, "challenge")
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = store.ConsumeNonce(ctx, address, "challenge", fmt.Sprintf("replacement-%d", i), now)
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrNoPendingChallenge, "worker %d", i)
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent login may consume the challenge")

	principal, err := store.GetPrincipalByAddress(ctx, address)
	require.NoError(t, err)
	require.NotNil(t, principal)
	require.NotNil(t, principal.LastLoginAt)
}
