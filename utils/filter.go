package utils

import (
	"strings"

	"storefront/models"
)

// AllCategories is the sentinel chip that disables category filtering.
const AllCategories = "All"

// FilterProducts returns the products whose title, category or description
// contains the query, case-insensitively. A blank query returns the input
// unchanged.
func FilterProducts(products []models.Product, searchQuery string) []models.Product {
	if strings.TrimSpace(searchQuery) == "" {
		return products
	}

	query := strings.ToLower(searchQuery)
	filtered := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByCategory keeps products whose category matches exactly. The "All"
// sentinel (or an empty category) disables the filter. Applied before the
// text filter.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == AllCategories {
		return products
	}

	filtered := []models.Product{}
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// UniqueCategories lists the distinct categories in first-seen order,
// prefixed with the "All" sentinel.
func UniqueCategories(products []models.Product) []string {
	categories := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
