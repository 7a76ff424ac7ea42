package middleware

import (
	"fmt"
	"strings"

	"library-backend/internal/shared/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity resolves the per-request identity from the token minted by the
// external authentication collaborator. The token carries the already
// verified (email, name) pair; no authentication happens here. A missing or
// malformed token does not abort the request, it just leaves the identity
// anonymous — write authorization is enforced downstream by the access
// policy.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, resolveIdentity(c, secret))
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, secret string) access.Identity {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return access.Identity{}
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return access.Identity{}
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return access.Identity{}
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return access.Identity{Email: email, DisplayName: name}
}

// IdentityFrom returns the identity resolved for this request.
func IdentityFrom(c *gin.Context) access.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(access.Identity); ok {
			return id
		}
	}
	return access.Identity{}
}
