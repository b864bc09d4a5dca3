package auth

import (
	"fmt"

	"github.com/mintmarket/marketplace/internal/domain"
)

// challengeTemplate is the versioned sign-in message presented to wallets.
// The literal text is part of the security contract: changing it invalidates
// every in-flight challenge and requires a protocol version bump.
const challengeTemplate = "Welcome! Click to sign in and accept the Terms of Service.\n" +
	"This request will not trigger a blockchain transaction or cost any gas fees.\n" +
	"Wallet address:\n" +
	"%s\n" +
	"Nonce:\n" +
	"%s"

// BuildChallengeMessage renders the sign-in message for an address and nonce.
// The address is embedded lowercase so a signature collected for one address
// cannot authenticate a different one; the nonce prevents replay across
// sessions.
func BuildChallengeMessage(address string, nonce string) string {
	return fmt.Sprintf(challengeTemplate, domain.NormalizeAddress(address), nonce)
}
