// Package handler hosts the gin handlers. Handlers bind and translate;
// all business decisions live in the domain services and use cases.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "bookshop/pkg/errors"
)

// parseID reads a positive numeric path parameter. Anything else is a
// validation error, not a 404: the route matched, the value did not.
func parseID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Newf(apperrors.KindValidation, "invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

// bindError wraps a gin binding failure as a validation error.
func bindError(err error) error {
	return apperrors.New(apperrors.KindValidation, "invalid request body: "+err.Error())
}
