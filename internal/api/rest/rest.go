package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/mintmarket/marketplace/internal/api/middleware"
	"github.com/mintmarket/marketplace/internal/auth"
	"github.com/mintmarket/marketplace/internal/store"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, tokens *auth.TokenIssuer, st store.Store) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	authRequired := middleware.Auth(tokens, st)

	v1 := router.Group("/api/v1")
	{
		// Wallet challenge/response login (open)
		v1.POST("/auth/challenge", handler.RequestChallenge)
		v1.POST("/auth/login", handler.Login)

		// Profile of the authenticated principal
		v1.GET("/me", authRequired, handler.GetMe)
		v1.PUT("/me", authRequired, handler.UpdateMe)

		// Asset catalogue (public read access)
		v1.GET("/assets", handler.ListAssets)
		v1.GET("/assets/:id", handler.GetAsset)
		v1.GET("/assets/:id/owner", handler.GetAssetOwner)
		v1.GET("/assets/:id/royalty", handler.GetAssetRoyalty)

		// Marketplace browse (public read access)
		v1.GET("/marketplace/listings", handler.ListListings)
		v1.GET("/marketplace/listings/:id", handler.GetListing)
		v1.GET("/marketplace/listings/:id/chain", handler.GetListingChainState)
		v1.GET("/marketplace/platform-fee", handler.GetPlatformFee)

		// Marketplace mutations (authenticated)
		v1.POST("/marketplace/listings", authRequired, handler.CreateListing)
		v1.POST("/marketplace/listings/:id/cancel", authRequired, handler.CancelListing)
		v1.POST("/marketplace/buy", authRequired, handler.BuyIntent)

		// Mint request workflow
		v1.POST("/mint-requests", authRequired, middleware.RequireArtist(), handler.CreateMintRequest)
		v1.GET("/mint-requests", authRequired, handler.ListMyMintRequests)
		v1.GET("/mint-requests/:id", authRequired, handler.GetMintRequest)

		// Admin surface
		admin := v1.Group("/admin", authRequired, middleware.RequireAdmin())
		{
			admin.GET("/mint-requests", handler.ListAllMintRequests)
			admin.POST("/mint-requests/:id/review", handler.ReviewMintRequest)
			admin.POST("/mint-requests/:id/mint-tx", handler.BuildMintTx)
			admin.POST("/mint-requests/:id/complete", handler.CompleteMint)
		}
	}
}
