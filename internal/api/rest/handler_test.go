package rest_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/api/rest"
	"github.com/mintmarket/marketplace/internal/auth"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/ledger"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/minting"
	"github.com/mintmarket/marketplace/internal/mocks"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	ethmocks "github.com/mintmarket/marketplace/internal/providers/ethereum/mocks"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

const (
	testSellerAddress = "0x1111111111111111111111111111111111111111"
	testBuyerAddress  = "0x2222222222222222222222222222222222222222"
	testTokenContract = "0x4444444444444444444444444444444444444444"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type restMocks struct {
	store  *mocks.MockStore
	chain  *ethmocks.MockMarketplaceClient
	pinner *mocks.MockPinner
	tokens *auth.TokenIssuer
}

func newTestRouter(t *testing.T) (*gin.Engine, *restMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := adapter.NewClock()
	m := &restMocks{
		store:  mocks.NewMockStore(ctrl),
		chain:  ethmocks.NewMockMarketplaceClient(ctrl),
		pinner: mocks.NewMockPinner(ctrl),
		tokens: auth.NewTokenIssuer("handler-test-secret", time.Hour, clock),
	}

	authService := auth.NewService(m.store, auth.NewSignatureVerifier(),
		auth.NewNonceStore(m.store, clock), m.tokens)
	listingLedger := ledger.New(m.store, clock)
	mintingService := minting.New(m.store, m.pinner, m.chain, clock)

	handler := rest.NewHandler("api-test", authService, m.store, listingLedger, mintingService, m.chain)

	router := gin.New()
	rest.SetupRoutes(router, handler, m.tokens, m.store)
	return router, m
}

// authenticate issues a session token for the principal and primes the
// middleware's principal lookup
func (m *restMocks) authenticate(t *testing.T, principal *schema.Principal) string {
	t.Helper()

	token, err := m.tokens.Issue(principal.ID, principal.WalletAddress)
	require.NoError(t, err)
	m.store.EXPECT().GetPrincipalByID(gomock.Any(), principal.ID).Return(principal, nil).AnyTimes()
	return "Bearer " + token
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func sellerPrincipal() *schema.Principal {
	return &schema.Principal{ID: 7, WalletAddress: testSellerAddress}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := performRequest(t, router, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	decodeBody(t, recorder, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "api-test", body["service"])
}

func TestRequestChallenge(t *testing.T) {
	t.Run("issues a challenge", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.store.EXPECT().RotateNonce(gomock.Any(), testSellerAddress, gomock.Any()).
			Return(sellerPrincipal(), nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/auth/challenge",
			map[string]string{"address": testSellerAddress}, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		decodeBody(t, recorder, &body)
		assert.Equal(t, testSellerAddress, body["address"])
		assert.Len(t, body["nonce"], 64)
		assert.Contains(t, body["message"], testSellerAddress)
		assert.Contains(t, body["message"], body["nonce"])
	})

	t.Run("rejects a malformed address", func(t *testing.T) {
		router, _ := newTestRouter(t)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/auth/challenge",
			map[string]string{"address": "0x123"}, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("exchanges a valid signature for a session", func(t *testing.T) {
		router, m := newTestRouter(t)

		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		address := domain.NormalizeAddress(crypto.PubkeyToAddress(key.PublicKey).Hex())

		nonce := "aa11bb22cc33dd44ee55ff66aa11bb22cc33dd44ee55ff66aa11bb22cc33dd44"
		principal := &schema.Principal{ID: 9, WalletAddress: address, Nonce: &nonce}

		message := auth.BuildChallengeMessage(address, nonce)
		sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
		require.NoError(t, err)
		sig[crypto.RecoveryIDOffset] += 27
		signature := "0x" + hex.EncodeToString(sig)

		m.store.EXPECT().GetPrincipalByAddress(gomock.Any(), address).Return(principal, nil)
		m.store.EXPECT().ConsumeNonce(gomock.Any(), address, nonce, gomock.Any(), gomock.Any()).
			Return(principal, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"address": address, "signature": signature}, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Token     string `json:"token"`
			Principal struct {
				WalletAddress string `json:"wallet_address"`
			} `json:"principal"`
		}
		decodeBody(t, recorder, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, address, body.Principal.WalletAddress)

		claims, err := m.tokens.Verify(body.Token)
		require.NoError(t, err)
		assert.Equal(t, address, claims.Address())
	})

	t.Run("rejects a wrong signature", func(t *testing.T) {
		router, m := newTestRouter(t)

		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		address := domain.NormalizeAddress(crypto.PubkeyToAddress(key.PublicKey).Hex())

		nonce := "aa11bb22cc33dd44ee55ff66aa11bb22cc33dd44ee55ff66aa11bb22cc33dd44"
		m.store.EXPECT().GetPrincipalByAddress(gomock.Any(), address).
			Return(&schema.Principal{ID: 9, WalletAddress: address, Nonce: &nonce}, nil)

		sig, err := crypto.Sign(accounts.TextHash([]byte("a different message")), key)
		require.NoError(t, err)
		sig[crypto.RecoveryIDOffset] += 27

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"address": address, "signature": "0x" + hex.EncodeToString(sig)}, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejects malformed signature encoding", func(t *testing.T) {
		router, _ := newTestRouter(t)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"address": testSellerAddress, "signature": "0x1234"}, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestProfile(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		router, _ := newTestRouter(t)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("returns the authenticated profile", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/me", nil, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		decodeBody(t, recorder, &body)
		assert.Equal(t, testSellerAddress, body["wallet_address"])
	})

	t.Run("updates profile fields", func(t *testing.T) {
		router, m := newTestRouter(t)
		principal := sellerPrincipal()
		token := m.authenticate(t, principal)

		username := "gallery_one"
		updated := *principal
		updated.Username = &username

		m.store.EXPECT().UpdatePrincipalProfile(gomock.Any(), principal.ID, store.ProfileUpdate{Username: &username}).
			Return(&updated, nil)

		recorder := performRequest(t, router, http.MethodPut, "/api/v1/me",
			map[string]string{"username": username}, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		decodeBody(t, recorder, &body)
		assert.Equal(t, username, body["username"])
	})

	t.Run("username collision conflicts", func(t *testing.T) {
		router, m := newTestRouter(t)
		principal := sellerPrincipal()
		token := m.authenticate(t, principal)

		m.store.EXPECT().UpdatePrincipalProfile(gomock.Any(), principal.ID, gomock.Any()).
			Return(nil, domain.ErrUsernameTaken)

		recorder := performRequest(t, router, http.MethodPut, "/api/v1/me",
			map[string]string{"username": "taken"}, token)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestListAssets(t *testing.T) {
	t.Run("pages with filters", func(t *testing.T) {
		router, m := newTestRouter(t)

		owner := testSellerAddress
		standard := domain.StandardERC721
		m.store.EXPECT().ListAssets(gomock.Any(), store.AssetFilter{
			OwnerAddress: &owner,
			Standard:     &standard,
			Limit:        2,
			Offset:       4,
		}).Return([]schema.Asset{
			{ID: 1, ContractAddress: testTokenContract, TokenNumber: "1", Standard: standard, MetadataURI: "ipfs://a"},
			{ID: 2, ContractAddress: testTokenContract, TokenNumber: "2", Standard: standard, MetadataURI: "ipfs://b"},
		}, int64(9), nil)

		recorder := performRequest(t, router, http.MethodGet,
			"/api/v1/assets?owner="+owner+"&standard=erc721&limit=2&offset=4", nil, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Items []map[string]interface{} `json:"items"`
			Total int64                    `json:"total"`
		}
		decodeBody(t, recorder, &body)
		assert.Len(t, body.Items, 2)
		assert.Equal(t, int64(9), body.Total)
	})

	t.Run("rejects an invalid owner filter", func(t *testing.T) {
		router, _ := newTestRouter(t)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/assets?owner=nope", nil, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("asset by id", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(5)).
			Return(&schema.Asset{ID: 5, ContractAddress: testTokenContract, TokenNumber: "5", MetadataURI: "ipfs://x"}, nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/assets/5", nil, "")
		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("absent asset is 404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(5)).Return(nil, nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/assets/5", nil, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestChainReads(t *testing.T) {
	erc721Asset := &schema.Asset{
		ID:              5,
		ContractAddress: testTokenContract,
		TokenNumber:     "55",
		Standard:        domain.StandardERC721,
		MetadataURI:     "ipfs://x",
	}

	t.Run("asset owner from chain", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(5)).Return(erc721Asset, nil)
		m.chain.EXPECT().OwnerOf(gomock.Any(), testTokenContract, "55").Return(testSellerAddress, nil)
		m.chain.EXPECT().TokenURI(gomock.Any(), testTokenContract, "55").Return("ipfs://x", nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/assets/5/owner", nil, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		decodeBody(t, recorder, &body)
		assert.Equal(t, testSellerAddress, body["owner_address"])
		assert.Equal(t, "ipfs://x", body["token_uri"])
	})

	t.Run("royalty quote", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(5)).Return(erc721Asset, nil)
		m.chain.EXPECT().RoyaltyInfo(gomock.Any(), testTokenContract, "55", "1000000").
			Return(testSellerAddress, "50000", nil)

		recorder := performRequest(t, router, http.MethodGet,
			"/api/v1/assets/5/royalty?sale_price_wei=1000000", nil, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		decodeBody(t, recorder, &body)
		assert.Equal(t, "50000", body["royalty_wei"])
	})

	t.Run("chain RPC outage is a bad gateway", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(5)).Return(erc721Asset, nil)
		m.chain.EXPECT().OwnerOf(gomock.Any(), testTokenContract, "55").
			Return("", fmt.Errorf("%w: connection refused", domain.ErrExternalService))

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/assets/5/owner", nil, "")
		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})

	t.Run("platform fee", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.chain.EXPECT().PlatformFeeBps(gomock.Any()).Return(uint64(250), nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/marketplace/platform-fee", nil, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]uint64
		decodeBody(t, recorder, &body)
		assert.Equal(t, uint64(250), body["platform_fee_bps"])
	})
}

func TestCreateListing(t *testing.T) {
	ownerID := int64(7)
	asset := &schema.Asset{
		ID:              10,
		ContractAddress: testTokenContract,
		TokenNumber:     "55",
		Standard:        domain.StandardERC721,
		Amount:          1,
		OwnerID:         &ownerID,
		MetadataURI:     "ipfs://x",
	}

	t.Run("creates a listing with an unsigned list transaction", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(10)).Return(asset, nil).Times(2)
		m.store.EXPECT().CreateActiveListing(gomock.Any(), store.CreateListingInput{
			AssetID:  10,
			SellerID: 7,
			PriceWei: "1000000000000000000",
			Amount:   1,
		}).Return(&schema.Listing{
			ID: 1, AssetID: 10, SellerID: 7, PriceWei: "1000000000000000000",
			Amount: 1, Status: domain.ListingStatusActive,
		}, nil)
		m.chain.EXPECT().BuildListTx(gomock.Any(), testSellerAddress, testTokenContract, "55",
			uint64(1), "1000000000000000000", domain.StandardERC721).
			Return(&ethereum.UnsignedTx{To: testTokenContract, Gas: 200000}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/listings",
			map[string]interface{}{"asset_id": 10, "price_wei": "1000000000000000000"}, token)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Listing struct {
				ID     int64  `json:"id"`
				Status string `json:"status"`
			} `json:"listing"`
			ListTx *ethereum.UnsignedTx `json:"list_tx"`
		}
		decodeBody(t, recorder, &body)
		assert.Equal(t, "active", body.Listing.Status)
		require.NotNil(t, body.ListTx)
		assert.Equal(t, uint64(200000), body.ListTx.Gas)
	})

	t.Run("second active listing conflicts", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(10)).Return(asset, nil)
		m.store.EXPECT().CreateActiveListing(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrAlreadyListed)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/listings",
			map[string]interface{}{"asset_id": 10, "price_wei": "1000"}, token)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, &schema.Principal{ID: 99, WalletAddress: testBuyerAddress})

		m.store.EXPECT().GetAssetByID(gomock.Any(), int64(10)).Return(asset, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/listings",
			map[string]interface{}{"asset_id": 10, "price_wei": "1000"}, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestCancelListing(t *testing.T) {
	t.Run("cancels a bound listing with an unsigned cancel transaction", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		chainID := uint64(42)
		m.store.EXPECT().MarkListingCancelled(gomock.Any(), int64(1), int64(7), gomock.Any()).
			Return(&schema.Listing{
				ID: 1, SellerID: 7, ChainListingID: &chainID,
				Status: domain.ListingStatusCancelled, PriceWei: "1000",
			}, nil)
		m.chain.EXPECT().BuildCancelTx(gomock.Any(), testSellerAddress, chainID).
			Return(&ethereum.UnsignedTx{Gas: 100000}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/listings/1/cancel", nil, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			CancelTx *ethereum.UnsignedTx `json:"cancel_tx"`
		}
		decodeBody(t, recorder, &body)
		require.NotNil(t, body.CancelTx)
		assert.Equal(t, uint64(100000), body.CancelTx.Gas)
	})

	t.Run("stranger cancel is forbidden", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		m.store.EXPECT().MarkListingCancelled(gomock.Any(), int64(1), int64(7), gomock.Any()).
			Return(nil, domain.ErrNotOwner)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/listings/1/cancel", nil, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestBuyIntent(t *testing.T) {
	buyer := &schema.Principal{ID: 8, WalletAddress: testBuyerAddress}

	t.Run("returns an unsigned purchase transaction", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, buyer)

		chainID := uint64(42)
		m.store.EXPECT().GetListingByID(gomock.Any(), int64(1)).Return(&schema.Listing{
			ID: 1, SellerID: 7, ChainListingID: &chainID,
			Status: domain.ListingStatusActive, PriceWei: "1000",
		}, nil)
		m.chain.EXPECT().BuildBuyTx(gomock.Any(), testBuyerAddress, chainID, "1000").
			Return(&ethereum.UnsignedTx{ValueWei: "1000", Gas: 300000}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/buy",
			map[string]interface{}{"listing_id": 1}, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			RequiresOnChainListing bool                 `json:"requires_on_chain_listing"`
			Tx                     *ethereum.UnsignedTx `json:"tx"`
		}
		decodeBody(t, recorder, &body)
		assert.False(t, body.RequiresOnChainListing)
		require.NotNil(t, body.Tx)
		assert.Equal(t, "1000", body.Tx.ValueWei)
	})

	t.Run("unbound listing requires on-chain listing first", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, buyer)

		m.store.EXPECT().GetListingByID(gomock.Any(), int64(1)).Return(&schema.Listing{
			ID: 1, SellerID: 7, Status: domain.ListingStatusActive, PriceWei: "1000",
		}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/buy",
			map[string]interface{}{"listing_id": 1}, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			RequiresOnChainListing bool `json:"requires_on_chain_listing"`
		}
		decodeBody(t, recorder, &body)
		assert.True(t, body.RequiresOnChainListing)
	})

	t.Run("seller cannot buy own listing", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		m.store.EXPECT().GetListingByID(gomock.Any(), int64(1)).Return(&schema.Listing{
			ID: 1, SellerID: 7, Status: domain.ListingStatusActive, PriceWei: "1000",
		}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/buy",
			map[string]interface{}{"listing_id": 1}, token)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("sold listing conflicts", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, buyer)

		m.store.EXPECT().GetListingByID(gomock.Any(), int64(1)).Return(&schema.Listing{
			ID: 1, SellerID: 7, Status: domain.ListingStatusSold, PriceWei: "1000",
		}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/buy",
			map[string]interface{}{"listing_id": 1}, token)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("absent listing is 404", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, buyer)

		m.store.EXPECT().GetListingByID(gomock.Any(), int64(1)).Return(nil, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/marketplace/buy",
			map[string]interface{}{"listing_id": 1}, token)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMintRequestRoutes(t *testing.T) {
	artist := &schema.Principal{ID: 7, WalletAddress: testSellerAddress, IsArtist: true}
	admin := &schema.Principal{ID: 2, WalletAddress: testBuyerAddress, IsAdmin: true}

	t.Run("artist submits a request", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, artist)

		m.store.EXPECT().CreateMintRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, input store.CreateMintRequestInput) (*schema.MintRequest, error) {
				assert.Equal(t, int64(7), input.ArtistID)
				assert.Equal(t, "Sunrise", input.Title)
				return &schema.MintRequest{
					ID: 1, ArtistID: 7, Title: input.Title, ArtworkURL: input.ArtworkURL,
					Standard: input.Standard, EditionSize: 1,
					Status: schema.MintRequestStatusPending,
				}, nil
			})

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/mint-requests",
			map[string]interface{}{
				"title":       "Sunrise",
				"artwork_url": "ipfs://QmArtwork",
				"standard":    "erc721",
			}, token)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body map[string]interface{}
		decodeBody(t, recorder, &body)
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("non-artist submission is forbidden", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, sellerPrincipal())

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/mint-requests",
			map[string]interface{}{
				"title":       "Sunrise",
				"artwork_url": "ipfs://QmArtwork",
				"standard":    "erc721",
			}, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin review routes are gated", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, artist)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/admin/mint-requests/1/review",
			map[string]interface{}{"approved": true}, token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin rejects a request", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, admin)

		m.store.EXPECT().GetMintRequestByID(gomock.Any(), int64(1)).
			Return(&schema.MintRequest{ID: 1, ArtistID: 7, Title: "Sunrise",
				ArtworkURL: "ipfs://QmArtwork", Standard: domain.StandardERC721,
				Status: schema.MintRequestStatusPending}, nil)
		m.store.EXPECT().ReviewMintRequest(gomock.Any(), int64(1), int64(2), false, gomock.Any(), nil, gomock.Any()).
			Return(&schema.MintRequest{ID: 1, ArtistID: 7, Title: "Sunrise",
				ArtworkURL: "ipfs://QmArtwork", Standard: domain.StandardERC721,
				Status: schema.MintRequestStatusRejected}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/admin/mint-requests/1/review",
			map[string]interface{}{"approved": false, "note": "low resolution"}, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		decodeBody(t, recorder, &body)
		assert.Equal(t, "rejected", body["status"])
	})

	t.Run("admin builds the mint transaction", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, admin)

		uri := "ipfs://QmMetadata"
		m.store.EXPECT().GetMintRequestByID(gomock.Any(), int64(1)).
			Return(&schema.MintRequest{ID: 1, ArtistID: 7, Title: "Sunrise",
				ArtworkURL: "ipfs://QmArtwork", Standard: domain.StandardERC721,
				Status: schema.MintRequestStatusApproved, MetadataURI: &uri}, nil)
		m.store.EXPECT().GetPrincipalByID(gomock.Any(), int64(7)).
			Return(&schema.Principal{ID: 7, WalletAddress: testSellerAddress}, nil)
		m.chain.EXPECT().BuildMintTx(gomock.Any(), testBuyerAddress, testSellerAddress, uri).
			Return(&ethereum.UnsignedTx{Gas: 300000}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/admin/mint-requests/1/mint-tx", nil, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Tx *ethereum.UnsignedTx `json:"tx"`
		}
		decodeBody(t, recorder, &body)
		require.NotNil(t, body.Tx)
		assert.Equal(t, uint64(300000), body.Tx.Gas)
	})

	t.Run("artist lists own requests", func(t *testing.T) {
		router, m := newTestRouter(t)
		token := m.authenticate(t, artist)

		m.store.EXPECT().ListMintRequests(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filter store.MintRequestFilter) ([]schema.MintRequest, int64, error) {
				require.NotNil(t, filter.ArtistID)
				assert.Equal(t, int64(7), *filter.ArtistID)
				return []schema.MintRequest{{ID: 1, ArtistID: 7, Title: "Sunrise",
					ArtworkURL: "ipfs://QmArtwork", Standard: domain.StandardERC721,
					Status: schema.MintRequestStatusPending}}, 1, nil
			})

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/mint-requests", nil, token)
		require.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("rejects a garbage token", func(t *testing.T) {
		router, _ := newTestRouter(t)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/me", nil, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejects a token for a vanished principal", func(t *testing.T) {
		router, m := newTestRouter(t)

		token, err := m.tokens.Issue(7, testSellerAddress)
		require.NoError(t, err)
		m.store.EXPECT().GetPrincipalByID(gomock.Any(), int64(7)).Return(nil, nil)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/me", nil, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
