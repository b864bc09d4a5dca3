package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
)

// Minimal ABIs covering the contract surface the backend touches. The NFT
// contracts follow ERC-721/ERC-1155 plus EIP-2981 royalties; the marketplace
// exposes escrowed fixed-price listings.
const (
	nftABIJSON = `[
		{"name":"ownerOf","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
		{"name":"tokenURI","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
		{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"royaltyInfo","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"},{"name":"salePrice","type":"uint256"}],"outputs":[{"name":"receiver","type":"address"},{"name":"royaltyAmount","type":"uint256"}]},
		{"name":"mint","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"}],"outputs":[{"name":"","type":"uint256"}]}
	]`

	marketplaceABIJSON = `[
		{"name":"getListing","type":"function","stateMutability":"view","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[{"name":"seller","type":"address"},{"name":"tokenContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"price","type":"uint256"},{"name":"standard","type":"uint8"},{"name":"status","type":"uint8"},{"name":"createdAt","type":"uint256"}]},
		{"name":"platformFeeBps","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"isListingActive","type":"function","stateMutability":"view","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
		{"name":"listERC721","type":"function","stateMutability":"nonpayable","inputs":[{"name":"tokenContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"listERC1155","type":"function","stateMutability":"nonpayable","inputs":[{"name":"tokenContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"buy","type":"function","stateMutability":"payable","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[]},
		{"name":"cancelListing","type":"function","stateMutability":"nonpayable","inputs":[{"name":"listingId","type":"uint256"}],"outputs":[]}
	]`
)

// Marketplace contract event signatures
var (
	// ListingCreated(uint256 indexed listingId, address indexed seller, address indexed tokenContract, uint256 tokenId, uint256 price, uint256 amount, uint8 standard)
	listingCreatedEventSignature = crypto.Keccak256Hash([]byte("ListingCreated(uint256,address,address,uint256,uint256,uint256,uint8)"))

	// ListingSold(uint256 indexed listingId, address indexed buyer, uint256 price, uint256 platformFee, uint256 royaltyFee)
	listingSoldEventSignature = crypto.Keccak256Hash([]byte("ListingSold(uint256,address,uint256,uint256,uint256)"))

	// ListingCancelled(uint256 indexed listingId, address indexed seller)
	listingCancelledEventSignature = crypto.Keccak256Hash([]byte("ListingCancelled(uint256,address)"))
)

// ChainListing is the on-chain listing record as returned by getListing
type ChainListing struct {
	ChainListingID uint64
	Seller         string
	TokenContract  string
	TokenNumber    string
	Amount         uint64
	PriceWei       string
	Standard       domain.Standard
	Status         domain.ListingStatus
	CreatedAt      time.Time
}

// UnsignedTx is a transaction prepared for client-side signing. The backend
// never holds keys; the wallet signs and broadcasts.
type UnsignedTx struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Data     string `json:"data"`
	ValueWei string `json:"value_wei"`
	Gas      uint64 `json:"gas"`
	GasPrice string `json:"gas_price"`
	Nonce    uint64 `json:"nonce"`
	ChainID  uint64 `json:"chain_id"`
}

// Gas limits matching the deployed contracts' observed usage
const (
	mintGasLimit   = 300000
	listGasLimit   = 200000
	buyGasLimit    = 300000
	cancelGasLimit = 100000
)

// MarketplaceClient exposes the chain reads, event parsing, and unsigned
// transaction builders backed by the marketplace and collection contracts
//
//go:generate mockgen -source=client.go -destination=mocks/chain_client.go -package=mocks -mock_names=MarketplaceClient=MockMarketplaceClient
type MarketplaceClient interface {
	// ParseEventLog parses a marketplace contract log into a market event
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.MarketEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// OwnerOf fetches the current owner of an ERC721 token
	OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error)

	// TokenURI fetches the metadata URI of an ERC721 token
	TokenURI(ctx context.Context, contractAddress, tokenNumber string) (string, error)

	// BalanceOf fetches the ERC1155 balance of a token for an owner
	BalanceOf(ctx context.Context, contractAddress, ownerAddress, tokenNumber string) (string, error)

	// RoyaltyInfo fetches the EIP-2981 royalty receiver and amount for a sale price
	RoyaltyInfo(ctx context.Context, contractAddress, tokenNumber, salePriceWei string) (string, string, error)

	// GetListing fetches the on-chain listing record from the marketplace contract
	GetListing(ctx context.Context, chainListingID uint64) (*ChainListing, error)

	// IsListingActive checks whether the on-chain listing is still open
	IsListingActive(ctx context.Context, chainListingID uint64) (bool, error)

	// PlatformFeeBps fetches the marketplace platform fee in basis points
	PlatformFeeBps(ctx context.Context) (uint64, error)

	// BuildMintTx builds an unsigned mint transaction for the collection contract
	BuildMintTx(ctx context.Context, fromAddress, toAddress, metadataURI string) (*UnsignedTx, error)

	// BuildListTx builds an unsigned listing transaction for the marketplace
	BuildListTx(ctx context.Context, fromAddress, tokenContract, tokenNumber string, amount uint64, priceWei string, standard domain.Standard) (*UnsignedTx, error)

	// BuildBuyTx builds an unsigned purchase transaction carrying the price as value
	BuildBuyTx(ctx context.Context, fromAddress string, chainListingID uint64, priceWei string) (*UnsignedTx, error)

	// BuildCancelTx builds an unsigned listing cancellation transaction
	BuildCancelTx(ctx context.Context, fromAddress string, chainListingID uint64) (*UnsignedTx, error)

	// Close closes the connection
	Close()
}

type marketplaceClient struct {
	chain              domain.Chain
	chainID            uint64
	marketplaceAddress common.Address
	collectionAddress  common.Address
	client             adapter.EthClient
	clock              adapter.Clock
	nftABI             abi.ABI
	marketplaceABI     abi.ABI
}

// NewClient creates a marketplace chain client bound to the configured
// contract addresses
func NewClient(chain domain.Chain, chainID uint64, marketplaceAddress, collectionAddress string, client adapter.EthClient, clock adapter.Clock) (MarketplaceClient, error) {
	nftABI, err := abi.JSON(strings.NewReader(nftABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse NFT ABI: %w", err)
	}
	marketplaceABI, err := abi.JSON(strings.NewReader(marketplaceABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse marketplace ABI: %w", err)
	}

	return &marketplaceClient{
		chain:              chain,
		chainID:            chainID,
		marketplaceAddress: common.HexToAddress(marketplaceAddress),
		collectionAddress:  common.HexToAddress(collectionAddress),
		client:             client,
		clock:              clock,
		nftABI:             nftABI,
		marketplaceABI:     marketplaceABI,
	}, nil
}

// SubscribeFilterLogs subscribes to filter logs
func (c *marketplaceClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// HeaderByNumber returns a header by number
func (c *marketplaceClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// isRevert reports whether a contract call failed with an on-chain revert.
// A revert is a definitive execution outcome, not a transport fault.
func isRevert(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "execution reverted") ||
		strings.Contains(msg, "invalid opcode") ||
		strings.Contains(msg, "out of gas")
}

// callWithRetry executes a read-only contract call with bounded exponential
// backoff. Reads are side-effect free, so retrying on transport errors is
// safe; reverts are returned immediately.
func (c *marketplaceClient) callWithRetry(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	var result []byte

	operation := func() error {
		res, err := c.client.CallContract(ctx, msg, nil)
		if err != nil {
			if isRevert(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = res
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}
	return result, nil
}

func parseTokenNumber(tokenNumber string) (*big.Int, error) {
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok || tokenID.Sign() < 0 {
		return nil, fmt.Errorf("invalid token number: %s", tokenNumber)
	}
	return tokenID, nil
}

// OwnerOf fetches the current owner of an ERC721 token
func (c *marketplaceClient) OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error) {
	tokenID, err := parseTokenNumber(tokenNumber)
	if err != nil {
		return "", err
	}

	data, err := c.nftABI.Pack("ownerOf", tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	})
	if err != nil {
		return "", err
	}

	var owner common.Address
	if err := c.nftABI.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	return domain.NormalizeAddress(owner.Hex()), nil
}

// TokenURI fetches the metadata URI of an ERC721 token
func (c *marketplaceClient) TokenURI(ctx context.Context, contractAddress, tokenNumber string) (string, error) {
	tokenID, err := parseTokenNumber(tokenNumber)
	if err != nil {
		return "", err
	}

	data, err := c.nftABI.Pack("tokenURI", tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	})
	if err != nil {
		return "", err
	}

	var uri string
	if err := c.nftABI.UnpackIntoInterface(&uri, "tokenURI", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	return uri, nil
}

// BalanceOf fetches the ERC1155 balance of a token for an owner
func (c *marketplaceClient) BalanceOf(ctx context.Context, contractAddress, ownerAddress, tokenNumber string) (string, error) {
	tokenID, err := parseTokenNumber(tokenNumber)
	if err != nil {
		return "", err
	}

	data, err := c.nftABI.Pack("balanceOf", common.HexToAddress(ownerAddress), tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	})
	if err != nil {
		return "", err
	}

	var balance *big.Int
	if err := c.nftABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	return balance.String(), nil
}

// RoyaltyInfo fetches the EIP-2981 royalty receiver and amount for a sale price
func (c *marketplaceClient) RoyaltyInfo(ctx context.Context, contractAddress, tokenNumber, salePriceWei string) (string, string, error) {
	tokenID, err := parseTokenNumber(tokenNumber)
	if err != nil {
		return "", "", err
	}
	salePrice, err := domain.ParseWei(salePriceWei)
	if err != nil {
		return "", "", err
	}

	data, err := c.nftABI.Pack("royaltyInfo", tokenID, salePrice)
	if err != nil {
		return "", "", fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	})
	if err != nil {
		return "", "", err
	}

	values, err := c.nftABI.Unpack("royaltyInfo", result)
	if err != nil {
		return "", "", fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(values) != 2 {
		return "", "", fmt.Errorf("unexpected royaltyInfo output length: %d", len(values))
	}

	receiver, ok := values[0].(common.Address)
	if !ok {
		return "", "", fmt.Errorf("unexpected royaltyInfo receiver type")
	}
	amount, ok := values[1].(*big.Int)
	if !ok {
		return "", "", fmt.Errorf("unexpected royaltyInfo amount type")
	}

	return domain.NormalizeAddress(receiver.Hex()), amount.String(), nil
}

// GetListing fetches the on-chain listing record from the marketplace contract
func (c *marketplaceClient) GetListing(ctx context.Context, chainListingID uint64) (*ChainListing, error) {
	data, err := c.marketplaceABI.Pack("getListing", new(big.Int).SetUint64(chainListingID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &c.marketplaceAddress,
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	values, err := c.marketplaceABI.Unpack("getListing", result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(values) != 8 {
		return nil, fmt.Errorf("unexpected getListing output length: %d", len(values))
	}

	seller, ok0 := values[0].(common.Address)
	tokenContract, ok1 := values[1].(common.Address)
	tokenID, ok2 := values[2].(*big.Int)
	amount, ok3 := values[3].(*big.Int)
	price, ok4 := values[4].(*big.Int)
	standardCode, ok5 := values[5].(uint8)
	statusCode, ok6 := values[6].(uint8)
	createdAt, ok7 := values[7].(*big.Int)
	if !(ok0 && ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7) {
		return nil, fmt.Errorf("unexpected getListing output types")
	}

	standard := domain.StandardERC721
	if standardCode == 1 {
		standard = domain.StandardERC1155
	}

	statuses := []domain.ListingStatus{domain.ListingStatusActive, domain.ListingStatusSold, domain.ListingStatusCancelled}
	if int(statusCode) >= len(statuses) {
		return nil, fmt.Errorf("unknown listing status code: %d", statusCode)
	}

	return &ChainListing{
		ChainListingID: chainListingID,
		Seller:         domain.NormalizeAddress(seller.Hex()),
		TokenContract:  domain.NormalizeAddress(tokenContract.Hex()),
		TokenNumber:    tokenID.String(),
		Amount:         amount.Uint64(),
		PriceWei:       price.String(),
		Standard:       standard,
		Status:         statuses[statusCode],
		CreatedAt:      c.clock.Unix(createdAt.Int64(), 0),
	}, nil
}

// IsListingActive checks whether the on-chain listing is still open
func (c *marketplaceClient) IsListingActive(ctx context.Context, chainListingID uint64) (bool, error) {
	data, err := c.marketplaceABI.Pack("isListingActive", new(big.Int).SetUint64(chainListingID))
	if err != nil {
		return false, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &c.marketplaceAddress,
		Data: data,
	})
	if err != nil {
		return false, err
	}

	var active bool
	if err := c.marketplaceABI.UnpackIntoInterface(&active, "isListingActive", result); err != nil {
		return false, fmt.Errorf("failed to unpack result: %w", err)
	}

	return active, nil
}

// PlatformFeeBps fetches the marketplace platform fee in basis points
func (c *marketplaceClient) PlatformFeeBps(ctx context.Context) (uint64, error) {
	data, err := c.marketplaceABI.Pack("platformFeeBps")
	if err != nil {
		return 0, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.callWithRetry(ctx, ethereum.CallMsg{
		To:   &c.marketplaceAddress,
		Data: data,
	})
	if err != nil {
		return 0, err
	}

	var bps *big.Int
	if err := c.marketplaceABI.UnpackIntoInterface(&bps, "platformFeeBps", result); err != nil {
		return 0, fmt.Errorf("failed to unpack result: %w", err)
	}

	return bps.Uint64(), nil
}

// buildUnsignedTx assembles the common envelope around packed calldata
func (c *marketplaceClient) buildUnsignedTx(ctx context.Context, from, to common.Address, data []byte, value *big.Int, gasLimit uint64) (*UnsignedTx, error) {
	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get nonce: %v", domain.ErrExternalService, err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get gas price: %v", domain.ErrExternalService, err)
	}

	valueWei := "0"
	if value != nil {
		valueWei = value.String()
	}

	return &UnsignedTx{
		From:     domain.NormalizeAddress(from.Hex()),
		To:       domain.NormalizeAddress(to.Hex()),
		Data:     "0x" + common.Bytes2Hex(data),
		ValueWei: valueWei,
		Gas:      gasLimit,
		GasPrice: gasPrice.String(),
		Nonce:    nonce,
		ChainID:  c.chainID,
	}, nil
}

// BuildMintTx builds an unsigned mint transaction for the collection contract
func (c *marketplaceClient) BuildMintTx(ctx context.Context, fromAddress, toAddress, metadataURI string) (*UnsignedTx, error) {
	data, err := c.nftABI.Pack("mint", common.HexToAddress(toAddress), metadataURI)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	return c.buildUnsignedTx(ctx, common.HexToAddress(fromAddress), c.collectionAddress, data, nil, mintGasLimit)
}

// BuildListTx builds an unsigned listing transaction for the marketplace
func (c *marketplaceClient) BuildListTx(ctx context.Context, fromAddress, tokenContract, tokenNumber string, amount uint64, priceWei string, standard domain.Standard) (*UnsignedTx, error) {
	tokenID, err := parseTokenNumber(tokenNumber)
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseWei(priceWei)
	if err != nil {
		return nil, err
	}

	var data []byte
	if standard.SingleEdition() {
		data, err = c.marketplaceABI.Pack("listERC721", common.HexToAddress(tokenContract), tokenID, price)
	} else {
		data, err = c.marketplaceABI.Pack("listERC1155", common.HexToAddress(tokenContract), tokenID, new(big.Int).SetUint64(amount), price)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	return c.buildUnsignedTx(ctx, common.HexToAddress(fromAddress), c.marketplaceAddress, data, nil, listGasLimit)
}

// BuildBuyTx builds an unsigned purchase transaction carrying the price as value
func (c *marketplaceClient) BuildBuyTx(ctx context.Context, fromAddress string, chainListingID uint64, priceWei string) (*UnsignedTx, error) {
	price, err := domain.ParseWei(priceWei)
	if err != nil {
		return nil, err
	}

	data, err := c.marketplaceABI.Pack("buy", new(big.Int).SetUint64(chainListingID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	return c.buildUnsignedTx(ctx, common.HexToAddress(fromAddress), c.marketplaceAddress, data, price, buyGasLimit)
}

// BuildCancelTx builds an unsigned listing cancellation transaction
func (c *marketplaceClient) BuildCancelTx(ctx context.Context, fromAddress string, chainListingID uint64) (*UnsignedTx, error) {
	data, err := c.marketplaceABI.Pack("cancelListing", new(big.Int).SetUint64(chainListingID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	return c.buildUnsignedTx(ctx, common.HexToAddress(fromAddress), c.marketplaceAddress, data, nil, cancelGasLimit)
}

// ParseEventLog parses a marketplace contract log into a market event
func (c *marketplaceClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.MarketEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("log has no topics")
	}

	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(vLog.BlockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}

	event := &domain.MarketEvent{
		Chain:       c.chain,
		TxHash:      domain.NormalizeTxHash(vLog.TxHash.Hex()),
		BlockNumber: vLog.BlockNumber,
		Timestamp:   c.clock.Unix(int64(header.Time), 0), //nolint:gosec,G115 // header.Time is a uint64 from geth which is safe to cast
	}

	switch vLog.Topics[0] {
	case listingCreatedEventSignature:
		// ListingCreated(uint256 indexed listingId, address indexed seller, address indexed tokenContract, uint256 tokenId, uint256 price, uint256 amount, uint8 standard)
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid ListingCreated event: expected 4 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 128 {
			return nil, fmt.Errorf("invalid ListingCreated event: insufficient data")
		}

		event.EventType = domain.MarketEventListingCreated
		event.ChainListingID = new(big.Int).SetBytes(vLog.Topics[1].Bytes()).Uint64()
		event.Seller = domain.NormalizeAddress(common.BytesToAddress(vLog.Topics[2].Bytes()).Hex())
		event.ContractAddress = domain.NormalizeAddress(common.BytesToAddress(vLog.Topics[3].Bytes()).Hex())
		event.TokenNumber = new(big.Int).SetBytes(vLog.Data[0:32]).String()
		event.PriceWei = new(big.Int).SetBytes(vLog.Data[32:64]).String()
		event.Amount = new(big.Int).SetBytes(vLog.Data[64:96]).Uint64()
		event.Standard = domain.StandardERC721
		if new(big.Int).SetBytes(vLog.Data[96:128]).Uint64() == 1 {
			event.Standard = domain.StandardERC1155
		}

	case listingSoldEventSignature:
		// ListingSold(uint256 indexed listingId, address indexed buyer, uint256 price, uint256 platformFee, uint256 royaltyFee)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid ListingSold event: expected 3 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 96 {
			return nil, fmt.Errorf("invalid ListingSold event: insufficient data")
		}

		event.EventType = domain.MarketEventListingSold
		event.ChainListingID = new(big.Int).SetBytes(vLog.Topics[1].Bytes()).Uint64()
		event.Buyer = domain.NormalizeAddress(common.BytesToAddress(vLog.Topics[2].Bytes()).Hex())
		event.PriceWei = new(big.Int).SetBytes(vLog.Data[0:32]).String()
		event.PlatformFeeWei = new(big.Int).SetBytes(vLog.Data[32:64]).String()
		event.RoyaltyFeeWei = new(big.Int).SetBytes(vLog.Data[64:96]).String()

	case listingCancelledEventSignature:
		// ListingCancelled(uint256 indexed listingId, address indexed seller)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid ListingCancelled event: expected 3 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.MarketEventListingCancelled
		event.ChainListingID = new(big.Int).SetBytes(vLog.Topics[1].Bytes()).Uint64()
		event.Seller = domain.NormalizeAddress(common.BytesToAddress(vLog.Topics[2].Bytes()).Hex())

	default:
		return nil, fmt.Errorf("unknown event signature: %s", vLog.Topics[0].Hex())
	}

	return event, nil
}

// Close closes the connection
func (c *marketplaceClient) Close() {
	c.client.Close()
}
