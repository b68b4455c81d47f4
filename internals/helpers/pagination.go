package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Params hasil parse query ?page=&per_page=&sort_by=&sort_order=
type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

// Meta pagination untuk response list
type Meta struct {
	Page      int   `json:"page"`
	PerPage   int   `json:"per_page"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"total_page"`
}

func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) Params {
	p := Params{
		Page:      atoiDefault(c.Query("page"), 1),
		PerPage:   atoiDefault(c.Query("per_page"), 20),
		SortBy:    firstNonEmpty(c.Query("sort_by"), defaultSortBy),
		SortOrder: strings.ToLower(firstNonEmpty(c.Query("sort_order"), defaultSortOrder)),
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 || p.PerPage > 200 {
		p.PerPage = 20
	}
	if p.SortOrder != "desc" {
		p.SortOrder = "asc"
	}
	return p
}

func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// SafeOrderClause memetakan sort_by user ke kolom whitelist (anti SQL injection)
func (p Params) SafeOrderClause(allowed map[string]string, defaultKey string) string {
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed[defaultKey]
	}
	return col + " " + strings.ToUpper(p.SortOrder)
}

func BuildMeta(total int64, p Params) Meta {
	tp := int(total) / p.PerPage
	if int(total)%p.PerPage != 0 {
		tp++
	}
	return Meta{Page: p.Page, PerPage: p.PerPage, Total: total, TotalPage: tp}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
