package middleware

import (
	"errors"
	"net/http"
	"strings"

	"revup/internal/access"
	"revup/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required."))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Invalid or expired token."))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAction rejects requests whose role may not perform action.
// The denial message comes from access.Requires.
func RequireAction(action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := access.RoleUnknown
		if claims := GetClaims(c); claims != nil {
			role = access.ParseRole(claims.Role)
		}
		if err := access.Requires(role, action); err != nil {
			var denied *access.DeniedError
			msg := "Permission denied."
			if errors.As(err, &denied) {
				msg = denied.Msg
			}
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}
