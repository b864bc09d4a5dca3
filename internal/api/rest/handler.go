package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mintmarket/marketplace/internal/api/middleware"
	"github.com/mintmarket/marketplace/internal/api/rest/dto"
	"github.com/mintmarket/marketplace/internal/auth"
	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/ledger"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/minting"
	"github.com/mintmarket/marketplace/internal/providers/ethereum"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// RequestChallenge issues a sign-in challenge for a wallet address
	// POST /api/v1/auth/challenge
	RequestChallenge(c *gin.Context)

	// Login verifies a signed challenge and issues a session token
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// GetMe returns the authenticated principal's profile
	// GET /api/v1/me
	GetMe(c *gin.Context)

	// UpdateMe applies profile mutations for the authenticated principal
	// PUT /api/v1/me
	UpdateMe(c *gin.Context)

	// ListAssets retrieves catalogued assets with optional filters
	// GET /api/v1/assets?owner=<address>&creator=<address>&standard=<standard>&include_burned=<bool>&limit=<limit>&offset=<offset>
	ListAssets(c *gin.Context)

	// GetAsset retrieves a single asset by its ID
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// GetAssetOwner reads the current owner and metadata URI from the chain
	// GET /api/v1/assets/:id/owner
	GetAssetOwner(c *gin.Context)

	// GetAssetRoyalty quotes the EIP-2981 royalty for a sale price
	// GET /api/v1/assets/:id/royalty?sale_price_wei=<wei>
	GetAssetRoyalty(c *gin.Context)

	// ListListings retrieves marketplace listings with optional filters
	// GET /api/v1/marketplace/listings?status=<status>&seller=<address>&standard=<standard>&min_price_wei=<wei>&max_price_wei=<wei>&limit=<limit>&offset=<offset>
	ListListings(c *gin.Context)

	// GetListing retrieves a single listing by its ID
	// GET /api/v1/marketplace/listings/:id
	GetListing(c *gin.Context)

	// GetListingChainState reads the contract's view of a chain-bound listing
	// GET /api/v1/marketplace/listings/:id/chain
	GetListingChainState(c *gin.Context)

	// GetPlatformFee reads the marketplace platform fee from the contract
	// GET /api/v1/marketplace/platform-fee
	GetPlatformFee(c *gin.Context)

	// CreateListing opens a listing and returns the unsigned list transaction
	// POST /api/v1/marketplace/listings
	CreateListing(c *gin.Context)

	// CancelListing cancels the caller's listing, returning the unsigned
	// cancel transaction when the listing is bound on chain
	// POST /api/v1/marketplace/listings/:id/cancel
	CancelListing(c *gin.Context)

	// BuyIntent returns an unsigned purchase transaction for a listing, or a
	// requires_on_chain_listing outcome when the listing is not bound yet
	// POST /api/v1/marketplace/buy
	BuyIntent(c *gin.Context)

	// CreateMintRequest submits an artwork for mint approval (artist only)
	// POST /api/v1/mint-requests
	CreateMintRequest(c *gin.Context)

	// ListMyMintRequests retrieves the caller's mint requests
	// GET /api/v1/mint-requests?status=<status>&limit=<limit>&offset=<offset>
	ListMyMintRequests(c *gin.Context)

	// ListAllMintRequests retrieves mint requests across artists (admin only)
	// GET /api/v1/admin/mint-requests?status=<status>&limit=<limit>&offset=<offset>
	ListAllMintRequests(c *gin.Context)

	// GetMintRequest retrieves a mint request (owner or admin)
	// GET /api/v1/mint-requests/:id
	GetMintRequest(c *gin.Context)

	// ReviewMintRequest approves or rejects a pending request (admin only)
	// POST /api/v1/admin/mint-requests/:id/review
	ReviewMintRequest(c *gin.Context)

	// BuildMintTx builds the unsigned mint transaction for an approved
	// request (admin only)
	// POST /api/v1/admin/mint-requests/:id/mint-tx
	BuildMintTx(c *gin.Context)

	// CompleteMint records the confirmed mint and creates the asset (admin only)
	// POST /api/v1/admin/mint-requests/:id/complete
	CompleteMint(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service string
	auth    *auth.Service
	store   store.Store
	ledger  *ledger.Ledger
	minting *minting.Service
	chain   ethereum.MarketplaceClient
}

// NewHandler creates a new REST API handler
func NewHandler(service string, authService *auth.Service, st store.Store, ld *ledger.Ledger, mint *minting.Service, chain ethereum.MarketplaceClient) Handler {
	return &handler{
		service: service,
		auth:    authService,
		store:   st,
		ledger:  ld,
		minting: mint,
		chain:   chain,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: h.service})
}

// RequestChallenge issues a sign-in challenge for a wallet address
func (h *handler) RequestChallenge(c *gin.Context) {
	var req dto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	challenge, err := h.auth.RequestChallenge(c.Request.Context(), req.Address)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChallengeResponse{
		Address: domain.NormalizeAddress(req.Address),
		Nonce:   challenge.Nonce,
		Message: challenge.Message,
	})
}

// Login verifies a signed challenge and issues a session token
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Address, req.Signature)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:     session.Token,
		Principal: dto.FromPrincipal(session.Principal),
	})
}

// GetMe returns the authenticated principal's profile
func (h *handler) GetMe(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}
	c.JSON(http.StatusOK, dto.FromPrincipal(principal))
}

// UpdateMe applies profile mutations for the authenticated principal
func (h *handler) UpdateMe(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	updated, err := h.store.UpdatePrincipalProfile(c.Request.Context(), principal.ID, store.ProfileUpdate{
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPrincipal(updated))
}

// ListAssets retrieves catalogued assets with optional filters
func (h *handler) ListAssets(c *gin.Context) {
	var params ListAssetsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := params.ToFilter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	assets, total, err := h.store.ListAssets(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.FromAssets(assets, total, filter.Limit, filter.Offset))
}

// GetAsset retrieves a single asset by its ID
func (h *handler) GetAsset(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	asset, err := h.store.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to load asset")
		return
	}
	if asset == nil {
		respondNotFound(c, "Asset not found")
		return
	}

	c.JSON(http.StatusOK, dto.FromAsset(asset))
}

// GetAssetOwner reads the current owner and metadata URI from the chain
func (h *handler) GetAssetOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	asset, err := h.store.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to load asset")
		return
	}
	if asset == nil {
		respondNotFound(c, "Asset not found")
		return
	}
	if !asset.Standard.SingleEdition() {
		respondBadRequest(c, "Owner lookup is only available for single edition tokens")
		return
	}

	owner, err := h.chain.OwnerOf(c.Request.Context(), asset.ContractAddress, asset.TokenNumber)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	tokenURI, err := h.chain.TokenURI(c.Request.Context(), asset.ContractAddress, asset.TokenNumber)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AssetOwnerResponse{OwnerAddress: owner, TokenURI: tokenURI})
}

// GetAssetRoyalty quotes the EIP-2981 royalty for a sale price
func (h *handler) GetAssetRoyalty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	salePrice := c.Query("sale_price_wei")
	if !domain.IsValidWei(salePrice) {
		respondBadRequest(c, "sale_price_wei must be a base-10 integer string")
		return
	}

	asset, err := h.store.GetAssetByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to load asset")
		return
	}
	if asset == nil {
		respondNotFound(c, "Asset not found")
		return
	}

	receiver, royaltyWei, err := h.chain.RoyaltyInfo(c.Request.Context(), asset.ContractAddress, asset.TokenNumber, salePrice)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoyaltyResponse{
		Receiver:     receiver,
		RoyaltyWei:   royaltyWei,
		SalePriceWei: salePrice,
	})
}

// ListListings retrieves marketplace listings with optional filters
func (h *handler) ListListings(c *gin.Context) {
	var params ListListingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := params.ToFilter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listings, total, err := h.ledger.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list listings")
		return
	}

	c.JSON(http.StatusOK, dto.FromListings(listings, total, filter.Limit, filter.Offset))
}

// GetListing retrieves a single listing by its ID
func (h *handler) GetListing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := h.ledger.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromListing(listing))
}

// GetListingChainState reads the contract's view of a chain-bound listing
func (h *handler) GetListingChainState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := h.ledger.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if listing.ChainListingID == nil {
		respondNotFound(c, "Listing is not bound to a chain listing")
		return
	}

	chainListing, err := h.chain.GetListing(c.Request.Context(), *listing.ChainListingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	active, err := h.chain.IsListingActive(c.Request.Context(), *listing.ChainListingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromChainListing(chainListing, active))
}

// GetPlatformFee reads the marketplace platform fee from the contract
func (h *handler) GetPlatformFee(c *gin.Context) {
	feeBps, err := h.chain.PlatformFeeBps(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PlatformFeeResponse{PlatformFeeBps: feeBps})
}

// CreateListing opens a listing and returns the unsigned list transaction
func (h *handler) CreateListing(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if req.Amount == 0 {
		req.Amount = 1
	}

	listing, err := h.ledger.CreatePending(c.Request.Context(), req.AssetID, principal.ID, req.PriceWei, req.PriceUSD, req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := dto.CreateListingResponse{Listing: dto.FromListing(listing)}

	// The listing exists off-chain regardless of whether the transaction
	// could be prepared; the wallet can re-request it.
	asset, err := h.store.GetAssetByID(c.Request.Context(), req.AssetID)
	if err == nil && asset != nil {
		tx, txErr := h.chain.BuildListTx(c.Request.Context(), principal.WalletAddress,
			asset.ContractAddress, asset.TokenNumber, req.Amount, listing.PriceWei, asset.Standard)
		if txErr != nil {
			logger.Warn("failed to build list transaction",
				zap.Int64("listing_id", listing.ID),
				zap.Error(txErr),
			)
		} else {
			response.ListTx = tx
		}
	}

	c.JSON(http.StatusCreated, response)
}

// CancelListing cancels the caller's listing
func (h *handler) CancelListing(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := h.ledger.Cancel(c.Request.Context(), id, principal.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := dto.CancelListingResponse{Listing: dto.FromListing(listing)}

	if listing.ChainListingID != nil {
		tx, txErr := h.chain.BuildCancelTx(c.Request.Context(), principal.WalletAddress, *listing.ChainListingID)
		if txErr != nil {
			logger.Warn("failed to build cancel transaction",
				zap.Int64("listing_id", listing.ID),
				zap.Error(txErr),
			)
		} else {
			response.CancelTx = tx
		}
	}

	c.JSON(http.StatusOK, response)
}

// BuyIntent returns an unsigned purchase transaction for a listing
func (h *handler) BuyIntent(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.ledger.Get(c.Request.Context(), req.ListingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if listing.Status != domain.ListingStatusActive {
		respondDomainError(c, domain.ErrNotActive)
		return
	}
	if listing.SellerID == principal.ID {
		respondDomainError(c, domain.ErrOwnListing)
		return
	}

	if listing.ChainListingID == nil {
		c.JSON(http.StatusOK, dto.BuyIntentResponse{RequiresOnChainListing: true})
		return
	}

	tx, err := h.chain.BuildBuyTx(c.Request.Context(), principal.WalletAddress, *listing.ChainListingID, listing.PriceWei)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BuyIntentResponse{Tx: tx})
}

// CreateMintRequest submits an artwork for mint approval
func (h *handler) CreateMintRequest(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	var req dto.CreateMintRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	request, err := h.minting.Submit(c.Request.Context(), minting.SubmitInput{
		ArtistID:    principal.ID,
		Title:       req.Title,
		Description: req.Description,
		ArtworkURL:  req.ArtworkURL,
		Standard:    domain.Standard(req.Standard),
		EditionSize: req.EditionSize,
		RoyaltyBps:  req.RoyaltyBps,
		Attributes:  datatypes.JSON(req.Attributes),
	})
	if err != nil {
		if _, _, known := domainErrorStatus(err); known {
			respondDomainError(c, err)
		} else {
			respondValidationError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromMintRequest(request))
}

// ListMyMintRequests retrieves the caller's mint requests
func (h *handler) ListMyMintRequests(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	var params ListMintRequestsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := params.ToFilter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	filter.ArtistID = &principal.ID

	requests, total, err := h.minting.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list mint requests")
		return
	}

	c.JSON(http.StatusOK, dto.FromMintRequests(requests, total, filter.Limit, filter.Offset))
}

// ListAllMintRequests retrieves mint requests across artists
func (h *handler) ListAllMintRequests(c *gin.Context) {
	var params ListMintRequestsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := params.ToFilter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requests, total, err := h.minting.List(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list mint requests")
		return
	}

	c.JSON(http.StatusOK, dto.FromMintRequests(requests, total, filter.Limit, filter.Offset))
}

// GetMintRequest retrieves a mint request
func (h *handler) GetMintRequest(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	request, err := h.minting.Get(c.Request.Context(), id, principal.ID, principal.IsAdmin)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMintRequest(request))
}

// ReviewMintRequest approves or rejects a pending request
func (h *handler) ReviewMintRequest(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ReviewMintRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var request *schema.MintRequest
	var err error
	if *req.Approved {
		request, err = h.minting.Approve(c.Request.Context(), id, principal.ID, req.Note)
	} else {
		request, err = h.minting.Reject(c.Request.Context(), id, principal.ID, req.Note)
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMintRequest(request))
}

// BuildMintTx builds the unsigned mint transaction for an approved request
func (h *handler) BuildMintTx(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "not authenticated")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	tx, err := h.minting.BuildMintTx(c.Request.Context(), id, principal.WalletAddress)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MintTxResponse{Tx: tx})
}

// CompleteMint records the confirmed mint and creates the asset
func (h *handler) CompleteMint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CompleteMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	request, asset, err := h.minting.ConfirmMinted(c.Request.Context(), id, minting.ConfirmMintedInput{
		TxHash:          req.TxHash,
		ContractAddress: req.ContractAddress,
		TokenNumber:     req.TokenNumber,
		BlockNumber:     req.BlockNumber,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompleteMintResponse{
		Request: dto.FromMintRequest(request),
		Asset:   dto.FromAsset(asset),
	})
}

// pathID parses the :id path parameter, responding with a 400 on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid id path parameter")
		return 0, false
	}
	return id, true
}
