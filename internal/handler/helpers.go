package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"presale/adminhub/internal/handler/middleware"
	jwtpkg "presale/adminhub/pkg/jwt"
)

func getAdminIDFromContext(c *gin.Context) (uuid.UUID, error) {
	claimsVal, exists := c.Get(middleware.ContextKeyUserClaims)
	if !exists {
		return uuid.Nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*jwtpkg.Claims)
	if !ok {
		return uuid.Nil, ErrNoClaims
	}
	return uuid.Parse(claims.Subject)
}

var ErrNoClaims = errors.New("claims not found in context")

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryUUID parses an optional uuid query param; empty input yields uuid.Nil.
func queryUUID(c *gin.Context, key string) (uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func pathUUID(c *gin.Context, key string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(key))
}
