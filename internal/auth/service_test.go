package auth

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/mocks"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

func newTestService(t *testing.T) (*Service, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	storeMock := mocks.NewMockStore(ctrl)
	clock := &adapter.RealClock{}
	verifier := NewSignatureVerifier()
	nonces := NewNonceStore(storeMock, clock)
	tokens := NewTokenIssuer("test-secret", time.Hour, clock)

	return NewService(storeMock, verifier, nonces, tokens), storeMock
}

func TestService_RequestChallenge(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a nonce and renders the message", func(t *testing.T) {
		service, storeMock := newTestService(t)

		var issued string
		storeMock.EXPECT().
			RotateNonce(ctx, "0xAbCdEF1234567890aBcDef1234567890ABCDEF12", gomock.Any()).
			DoAndReturn(func(_ context.Context, address, nonce string) (*schema.Principal, error) {
				issued = nonce
				return &schema.Principal{
					ID:            1,
					WalletAddress: domain.NormalizeAddress(address),
					Nonce:         &nonce,
				}, nil
			})

		challenge, err := service.RequestChallenge(ctx, "0xAbCdEF1234567890aBcDef1234567890ABCDEF12")
		require.NoError(t, err)
		assert.Equal(t, issued, challenge.Nonce)
		assert.Len(t, challenge.Nonce, 64)
		assert.Contains(t, challenge.Message, "0xabcdef1234567890abcdef1234567890abcdef12")
		assert.Contains(t, challenge.Message, challenge.Nonce)
	})

	t.Run("consecutive challenges never repeat a nonce", func(t *testing.T) {
		service, storeMock := newTestService(t)

		seen := map[string]bool{}
		storeMock.EXPECT().
			RotateNonce(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, address, nonce string) (*schema.Principal, error) {
				assert.False(t, seen[nonce])
				seen[nonce] = true
				return &schema.Principal{ID: 1, WalletAddress: address, Nonce: &nonce}, nil
			}).
			Times(3)

		for range 3 {
			_, err := service.RequestChallenge(ctx, "0xabcdef1234567890abcdef1234567890abcdef12")
			require.NoError(t, err)
		}
	})

	t.Run("rejects a malformed address", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.RequestChallenge(ctx, "0xshort")
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := signerAddress(key)
	nonce := "aaaabbbbccccddddaaaabbbbccccddddaaaabbbbccccddddaaaabbbbccccdddd"

	principal := func() *schema.Principal {
		n := nonce
		return &schema.Principal{ID: 7, WalletAddress: address, Nonce: &n}
	}

	t.Run("valid signature over the pending challenge logs in", func(t *testing.T) {
		service, storeMock := newTestService(t)

		signature := signMessage(t, key, BuildChallengeMessage(address, nonce))

		storeMock.EXPECT().GetPrincipalByAddress(ctx, address).Return(principal(), nil)
		storeMock.EXPECT().
			ConsumeNonce(ctx, address, nonce, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, address, consumed, replacement string, loginAt time.Time) (*schema.Principal, error) {
				assert.NotEqual(t, consumed, replacement)
				p := principal()
				p.Nonce = &replacement
				p.LastLoginAt = &loginAt
				return p, nil
			})

		session, err := service.Login(ctx, address, signature)
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		assert.Equal(t, int64(7), session.Principal.ID)

		// Token subject is the lowercase wallet address
		clock := &adapter.RealClock{}
		claims, err := NewTokenIssuer("test-secret", time.Hour, clock).Verify(session.Token)
		require.NoError(t, err)
		assert.Equal(t, address, claims.Address())
		assert.Equal(t, int64(7), claims.PrincipalID)
	})

	t.Run("replayed signature fails once the nonce rotated", func(t *testing.T) {
		service, storeMock := newTestService(t)

		signature := signMessage(t, key, BuildChallengeMessage(address, nonce))

		// The store rotated the nonce during the first login, so the
		// stored challenge no longer matches the signed message
		rotated := "eeeeffff00001111eeeeffff00001111eeeeffff00001111eeeeffff00001111"
		p := principal()
		p.Nonce = &rotated
		storeMock.EXPECT().GetPrincipalByAddress(ctx, address).Return(p, nil)

		_, err := service.Login(ctx, address, signature)
		assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	})

	t.Run("concurrent login losing the nonce race fails", func(t *testing.T) {
		service, storeMock := newTestService(t)

		signature := signMessage(t, key, BuildChallengeMessage(address, nonce))

		storeMock.EXPECT().GetPrincipalByAddress(ctx, address).Return(principal(), nil)
		storeMock.EXPECT().
			ConsumeNonce(ctx, address, nonce, gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrNoPendingChallenge)

		_, err := service.Login(ctx, address, signature)
		assert.ErrorIs(t, err, domain.ErrNoPendingChallenge)
	})

	t.Run("signature from a different key fails", func(t *testing.T) {
		service, storeMock := newTestService(t)

		otherKey, err := crypto.GenerateKey()
		require.NoError(t, err)
		signature := signMessage(t, otherKey, BuildChallengeMessage(address, nonce))

		storeMock.EXPECT().GetPrincipalByAddress(ctx, address).Return(principal(), nil)

		_, err = service.Login(ctx, address, signature)
		assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
	})

	t.Run("unknown principal fails", func(t *testing.T) {
		service, storeMock := newTestService(t)

		signature := signMessage(t, key, BuildChallengeMessage(address, nonce))
		storeMock.EXPECT().GetPrincipalByAddress(ctx, address).Return(nil, nil)

		_, err := service.Login(ctx, address, signature)
		assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)
	})

	t.Run("principal without a pending challenge fails", func(t *testing.T) {
		service, storeMock := newTestService(t)

		signature := signMessage(t, key, BuildChallengeMessage(address, nonce))
		storeMock.EXPECT().GetPrincipalByAddress(ctx, address).
			Return(&schema.Principal{ID: 7, WalletAddress: address}, nil)

		_, err := service.Login(ctx, address, signature)
		assert.ErrorIs(t, err, domain.ErrNoPendingChallenge)
	})

	t.Run("malformed address fails before touching the store", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Login(ctx, "0xnothex", "0x00")
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("malformed signature fails before touching the store", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Login(ctx, address, "0xdeadbeef")
		assert.ErrorIs(t, err, domain.ErrInvalidSignatureEncoding)
	})
}
