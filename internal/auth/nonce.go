package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// nonceBytes is the entropy of a challenge nonce (hex-encoded to 64 chars)
const nonceBytes = 32

// NonceStore issues and consumes single-use login challenges. Only the most
// recently issued nonce for an address is valid; consumption atomically
// replaces it with a fresh one so a captured signature can never be replayed.
type NonceStore struct {
	store store.Store
	clock adapter.Clock
}

// NewNonceStore creates a new nonce store
func NewNonceStore(s store.Store, clock adapter.Clock) *NonceStore {
	return &NonceStore{store: s, clock: clock}
}

// Issue generates a fresh nonce for address, creating the principal on first
// contact. Any previously issued nonce is overwritten.
func (n *NonceStore) Issue(ctx context.Context, address string) (string, error) {
	nonce, err := generateNonce()
	if err != nil {
		return "", err
	}

	if _, err := n.store.RotateNonce(ctx, address, nonce); err != nil {
		return "", err
	}
	return nonce, nil
}

// Consume atomically invalidates the pending nonce for address and rotates in
// a replacement. It returns domain.ErrNoPendingChallenge if nonce does not
// match the stored value, so two concurrent logins can never both succeed
// against the same challenge.
func (n *NonceStore) Consume(ctx context.Context, address string, nonce string) (*schema.Principal, error) {
	replacement, err := generateNonce()
	if err != nil {
		return nil, err
	}

	return n.store.ConsumeNonce(ctx, address, nonce, replacement, n.clock.Now())
}

func generateNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
