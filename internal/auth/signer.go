package auth

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mintmarket/marketplace/internal/domain"
)

// SignatureVerifier recovers signer addresses from EIP-191 personal-message
// signatures. It is pure and safe for concurrent use.
type SignatureVerifier struct{}

// NewSignatureVerifier creates a new signature verifier
func NewSignatureVerifier() *SignatureVerifier {
	return &SignatureVerifier{}
}

// Recover returns the lowercase address that produced signature over message.
// It returns domain.ErrInvalidSignatureEncoding for malformed signatures
// (wrong length, bad hex, out-of-range recovery byte). A well-formed signature
// from the wrong key does not error, it simply recovers a different address.
func (v *SignatureVerifier) Recover(message string, signature string) (string, error) {
	if !domain.IsValidSignature(signature) {
		return "", domain.ErrInvalidSignatureEncoding
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", domain.ErrInvalidSignatureEncoding
	}

	// Wallets emit the recovery byte as 27/28 per the original Ethereum
	// convention, SigToPub expects 0/1
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return "", domain.ErrInvalidSignatureEncoding
	}

	hash := accounts.TextHash([]byte(message))
	pubKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidSignatureEncoding, err.Error())
	}

	return domain.NormalizeAddress(crypto.PubkeyToAddress(*pubKey).Hex()), nil
}

// Verify reports whether signature over message was produced by
// claimedAddress. Malformed signatures verify as false.
func (v *SignatureVerifier) Verify(message string, signature string, claimedAddress string) bool {
	recovered, err := v.Recover(message, signature)
	if err != nil {
		return false
	}
	return recovered == domain.NormalizeAddress(claimedAddress)
}
