package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/pkg/types"
)

var ErrEmptyParameter = errors.New("empty parameter")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

// ClaimsFromContext returns the JWT claims stored by the auth middleware.
func ClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

// UserIDFromContext returns the authenticated user id for attribution fields
// such as uploaded_by.
func UserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := ClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
