//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxProductNameLen = 255

// Product is the catalog value record as served by the upstream shop API.
// It is fetched, displayed, and discarded; the storefront derives nothing
// from it beyond cart line totals.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Size        []string `json:"size"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// ProductFilter carries the catalog filter parameters understood by the
// upstream products endpoint.
type ProductFilter struct {
	Category string
	Sizes    []string
	Colors   []string
	MinPrice *float64
	MaxPrice *float64
}

// IsZero reports whether no filter parameter is set.
func (f ProductFilter) IsZero() bool {
	return f.Category == "" && len(f.Sizes) == 0 && len(f.Colors) == 0 &&
		f.MinPrice == nil && f.MaxPrice == nil
}

// Query encodes the filter as upstream query parameters. Sizes and colors
// are comma-joined, matching the upstream contract.
func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if len(f.Sizes) > 0 {
		q.Set("size", strings.Join(f.Sizes, ","))
	}
	if len(f.Colors) > 0 {
		q.Set("color", strings.Join(f.Colors, ","))
	}
	if f.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return q
}

// ProductInput represents parameters to create or update a Product.
type ProductInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Size        []string `json:"size"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// Validate validates ProductInput.
func (r *ProductInput) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxProductNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category is required")
	}
	if r.Price < 0 {
		return errors.New("price must be >= 0")
	}
	return nil
}
