// Package dto defines the JSON request and response shapes of the API.
// Binding tags carry the structural validation; business rules stay in the
// domain services.
package dto

import (
	"github.com/shopspring/decimal"

	"bookshop/pkg/page"
)

func init() {
	// Prices serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ListQuery carries the shared pagination query parameters.
type ListQuery struct {
	Page int    `form:"page,default=0"`
	Size int    `form:"size,default=20"`
	Sort string `form:"sort"`
}

// ToPageRequest normalizes the raw query values.
func (q ListQuery) ToPageRequest() page.Request {
	return page.New(q.Page, q.Size, q.Sort)
}
