// catalog.go - Read access to the theme collections

package service // Declares the package name

import (
	"context"

	"dress-suggestion-backend/models" // Theme documents
)

// ThemeStore is the read side of the theme collections.
type ThemeStore interface {
	HomePages(ctx context.Context) ([]models.HomePage, error)
	RandomDressTheme(ctx context.Context) ([]models.DressTheme, error)
}

// Catalog serves the theme collections.
type Catalog struct {
	store ThemeStore
}

func NewCatalog(store ThemeStore) *Catalog {
	return &Catalog{store: store}
}

// HomeThemes returns every home page document in insertion order.
func (c *Catalog) HomeThemes(ctx context.Context) ([]models.HomePage, error) {
	pages, err := c.store.HomePages(ctx)
	if err != nil {
		return nil, infraError(err)
	}
	if pages == nil {
		pages = []models.HomePage{}
	}
	return pages, nil
}

// DressTheme returns a random dress theme as a slice of zero or one element.
func (c *Catalog) DressTheme(ctx context.Context) ([]models.DressTheme, error) {
	themes, err := c.store.RandomDressTheme(ctx)
	if err != nil {
		return nil, infraError(err)
	}
	if themes == nil {
		themes = []models.DressTheme{}
	}
	return themes, nil
}
