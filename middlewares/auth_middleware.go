package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sportsnews/utils"
)

const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
)

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthRequired rejects the request with 401 unless a valid session token is
// presented.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		claims, err := utils.ParseJWT(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		ctx.Set(CtxUserID, claims.UserID)
		ctx.Set(CtxEmail, claims.Email)
		ctx.Next()
	}
}

// AuthOptional resolves the session when a token is present and lets the
// request through either way. Handlers see user id 0 for anonymous visitors.
func AuthOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := bearerToken(ctx); token != "" {
			if claims, err := utils.ParseJWT(token); err == nil {
				ctx.Set(CtxUserID, claims.UserID)
				ctx.Set(CtxEmail, claims.Email)
			}
		}
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's id, or 0 when the request
// is anonymous.
func CurrentUserID(ctx *gin.Context) uint {
	if v, ok := ctx.Get(CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
