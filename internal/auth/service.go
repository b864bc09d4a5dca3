package auth

import (
	"context"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// Challenge is the response to a sign-in challenge request
type Challenge struct {
	Nonce   string
	Message string
}

// Session is the result of a successful login
type Session struct {
	Token     string
	Principal *schema.Principal
}

// Service orchestrates the wallet challenge/response login flow
type Service struct {
	store    store.Store
	verifier *SignatureVerifier
	nonces   *NonceStore
	tokens   *TokenIssuer
}

// NewService creates a new authentication service
func NewService(s store.Store, verifier *SignatureVerifier, nonces *NonceStore, tokens *TokenIssuer) *Service {
	return &Service{
		store:    s,
		verifier: verifier,
		nonces:   nonces,
		tokens:   tokens,
	}
}

// RequestChallenge issues a fresh sign-in challenge for a wallet address,
// creating the principal on first contact. A new request always rotates the
// nonce, so an interrupted login never leaves an account stuck.
func (s *Service) RequestChallenge(ctx context.Context, address string) (*Challenge, error) {
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}

	nonce, err := s.nonces.Issue(ctx, address)
	if err != nil {
		return nil, err
	}

	return &Challenge{
		Nonce:   nonce,
		Message: BuildChallengeMessage(address, nonce),
	}, nil
}

// Login verifies a signature over the pending challenge message and exchanges
// it for a session token. The nonce is consumed and replaced in the same
// store transaction that records the login, so replaying the identical
// signature fails with domain.ErrNoPendingChallenge.
func (s *Service) Login(ctx context.Context, address string, signature string) (*Session, error) {
	if !domain.IsValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}
	if !domain.IsValidSignature(signature) {
		return nil, domain.ErrInvalidSignatureEncoding
	}

	principal, err := s.store.GetPrincipalByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrPrincipalNotFound
	}
	if principal.Nonce == nil {
		return nil, domain.ErrNoPendingChallenge
	}

	message := BuildChallengeMessage(address, *principal.Nonce)
	if !s.verifier.Verify(message, signature, address) {
		return nil, domain.ErrSignatureMismatch
	}

	// Concurrent logins race here; exactly one wins the nonce
	principal, err = s.nonces.Consume(ctx, address, *principal.Nonce)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(principal.ID, principal.WalletAddress)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		Principal: principal,
	}, nil
}
