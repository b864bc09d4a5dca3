package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mintmarket/marketplace/internal/auth"
	"github.com/mintmarket/marketplace/internal/logger"
	"github.com/mintmarket/marketplace/internal/store"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

const (
	principalKey = "auth_principal"
	claimsKey    = "auth_claims"
)

// unauthorized is the error envelope for failed authentication, matching
// the REST error shape
type unauthorized struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func abortUnauthorized(c *gin.Context, message string) {
	var body unauthorized
	body.Error.Code = "unauthorized"
	body.Error.Message = message
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

func abortForbidden(c *gin.Context, message string) {
	var body unauthorized
	body.Error.Code = "forbidden"
	body.Error.Message = message
	c.AbortWithStatusJSON(http.StatusForbidden, body)
}

// Auth returns a gin middleware validating the Bearer session token and
// loading the authenticated principal into the request context
func Auth(tokens *auth.TokenIssuer, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid Authorization header format")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			logger.Warn("session token rejected",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			abortUnauthorized(c, "invalid or expired session token")
			return
		}

		principal, err := st.GetPrincipalByID(c.Request.Context(), claims.PrincipalID)
		if err != nil {
			abortUnauthorized(c, "failed to load principal")
			return
		}
		if principal == nil || principal.WalletAddress != claims.Address() {
			abortUnauthorized(c, "unknown principal")
			return
		}

		c.Set(principalKey, principal)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin gates a route to admin principals. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsAdmin {
			abortForbidden(c, "admin access required")
			return
		}
		c.Next()
	}
}

// RequireArtist gates a route to artist principals. Must run after Auth.
func RequireArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsArtist {
			abortForbidden(c, "artist access required")
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal set by Auth
func PrincipalFromContext(c *gin.Context) (*schema.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*schema.Principal)
	return principal, ok
}
