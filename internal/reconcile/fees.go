package reconcile

import (
	"math/big"

	"github.com/mintmarket/marketplace/internal/domain"
)

// bpsDenominator is the basis-point scale (100% == 10000 bps)
const bpsDenominator = 10_000

// FeeBreakdown splits a sale price into its three integral parts. The parts
// always sum to the price exactly; any remainder from the basis-point
// division is assigned to seller proceeds.
type FeeBreakdown struct {
	PlatformFeeWei    string
	RoyaltyFeeWei     string
	SellerProceedsWei string
}

// ComputeFees derives the fee breakdown for a price in wei. Fees round down,
// the remainder goes to the seller, so no wei is ever created or lost.
func ComputeFees(priceWei string, platformFeeBps uint32, royaltyBps uint32) (*FeeBreakdown, error) {
	price, err := domain.ParseWei(priceWei)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if uint64(platformFeeBps)+uint64(royaltyBps) > bpsDenominator {
		return nil, domain.ErrFeeSumMismatch
	}

	platform := feeOf(price, platformFeeBps)
	royalty := feeOf(price, royaltyBps)

	proceeds := new(big.Int).Sub(price, platform)
	proceeds.Sub(proceeds, royalty)

	return &FeeBreakdown{
		PlatformFeeWei:    platform.String(),
		RoyaltyFeeWei:     royalty.String(),
		SellerProceedsWei: proceeds.String(),
	}, nil
}

// VerifyBreakdown checks that platform + royalty + proceeds equals the price
// with zero remainder. It returns domain.ErrFeeSumMismatch otherwise.
func VerifyBreakdown(priceWei string, breakdown *FeeBreakdown) error {
	price, err := domain.ParseWei(priceWei)
	if err != nil {
		return domain.ErrInvalidPrice
	}
	platform, err := domain.ParseWei(breakdown.PlatformFeeWei)
	if err != nil {
		return domain.ErrInvalidPrice
	}
	royalty, err := domain.ParseWei(breakdown.RoyaltyFeeWei)
	if err != nil {
		return domain.ErrInvalidPrice
	}
	proceeds, err := domain.ParseWei(breakdown.SellerProceedsWei)
	if err != nil {
		return domain.ErrInvalidPrice
	}

	sum := new(big.Int).Add(platform, royalty)
	sum.Add(sum, proceeds)
	if sum.Cmp(price) != 0 {
		return domain.ErrFeeSumMismatch
	}
	return nil
}

func feeOf(price *big.Int, bps uint32) *big.Int {
	fee := new(big.Int).Mul(price, big.NewInt(int64(bps)))
	return fee.Quo(fee, big.NewInt(bpsDenominator))
}
