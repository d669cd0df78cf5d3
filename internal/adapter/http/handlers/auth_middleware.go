package handlers

import (
	"net/http"
	"strings"

	"apnaghar/internal/domain/entities"
	"apnaghar/internal/usecase"
	"apnaghar/pkg"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

var errUnknownToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired credentials", http.StatusUnauthorized)

// AuthMiddleware resolves the bearer token (when present) to a Principal and
// attaches it to the gin context. Absent credentials pass through as
// anonymous; the usecases decide which operations require identity. An
// unknown token is rejected here: presenting bad credentials is never
// equivalent to presenting none.
func AuthMiddleware(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnknownToken.HTTPStatus, errUnknownToken.ToHTTPError())
			return
		}
		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal on the request, or a
// zero (anonymous) principal.
func CurrentPrincipal(c *gin.Context) entities.Principal {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return entities.Principal{}
	}
	p, _ := v.(entities.Principal)
	return p
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}
	return header
}
