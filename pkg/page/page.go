// Package page holds the pagination contract shared by every list endpoint:
// 0-based page number, size capped at 100, optional "field,dir" sort.
package page

import "strings"

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request is a normalized page specification.
type Request struct {
	Number    int    // 0-based page index
	Size      int    // 1..MaxSize
	Sort      string // requested sort field, empty for resource default
	Direction string // "asc" or "desc"
}

// New builds a Request from raw query values, clamping them into the
// documented bounds. sort is the raw "field,dir" query value.
func New(number, size int, sort string) Request {
	r := Request{Number: number, Size: size, Direction: "asc"}
	if r.Number < 0 {
		r.Number = 0
	}
	if r.Size < 1 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}

	if sort != "" {
		field, dir, _ := strings.Cut(sort, ",")
		r.Sort = strings.TrimSpace(field)
		if strings.EqualFold(strings.TrimSpace(dir), "desc") {
			r.Direction = "desc"
		}
	}
	return r
}

// Offset returns the row offset for this page.
func (r Request) Offset() int {
	return r.Number * r.Size
}

// OrderBy resolves the requested sort against a whitelist of exposed field
// names to database columns. Unknown or empty sorts fall back to fallback.
func (r Request) OrderBy(allowed map[string]string, fallback string) string {
	column, ok := allowed[r.Sort]
	if !ok {
		return fallback
	}
	return column + " " + r.Direction
}
