package auth

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/mocks"
)

func TestTokenIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).AnyTimes()

	issuer := NewTokenIssuer("test-secret", 24*time.Hour, clock)

	t.Run("issue and verify roundtrip", func(t *testing.T) {
		token, err := issuer.Issue(42, "0xAbCdEF1234567890aBcDef1234567890ABCDEF12")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.PrincipalID)
		assert.Equal(t, "0xabcdef1234567890abcdef1234567890abcdef12", claims.Address())
		assert.Equal(t, now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		shortCtrl := gomock.NewController(t)
		defer shortCtrl.Finish()

		issuedClock := mocks.NewMockClock(shortCtrl)
		issuedClock.EXPECT().Now().Return(now.Add(-48 * time.Hour))
		expired, err := NewTokenIssuer("test-secret", 24*time.Hour, issuedClock).
			Issue(42, "0xabcdef1234567890abcdef1234567890abcdef12")
		require.NoError(t, err)

		_, err = issuer.Verify(expired)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		foreign, err := NewTokenIssuer("other-secret", 24*time.Hour, clock).
			Issue(42, "0xabcdef1234567890abcdef1234567890abcdef12")
		require.NoError(t, err)

		_, err = issuer.Verify(foreign)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token, err := issuer.Issue(42, "0xabcdef1234567890abcdef1234567890abcdef12")
		require.NoError(t, err)

		_, err = issuer.Verify(token + "x")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
