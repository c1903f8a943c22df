package repositories

import (
	"errors"
	"fmt"
	"log"

	"storefront/config"
	"storefront/models"
)

// ErrNoSnapshot means the durable slot is empty or unreadable. The cart
// store treats it as "start empty" rather than an error worth failing on.
var ErrNoSnapshot = errors.New("no cart snapshot")

// CartRepository is the persistence adapter contract: one durable key-value
// slot holding the full serialized cart. Save runs after every mutation,
// Load runs once at startup.
type CartRepository interface {
	Save(lines []models.CartLine) error
	Load() ([]models.CartLine, error)
}

// NewCartRepository picks the driver from configuration. The file driver is
// the default and needs no infrastructure.
func NewCartRepository(cfg *config.Config) (CartRepository, error) {
	switch cfg.CartStorage {
	case "file":
		return NewFileCartRepository(cfg.CartFile), nil
	case "redis":
		return NewRedisCartRepository(cfg)
	case "postgres":
		return NewPostgresCartRepository(cfg)
	default:
		return nil, fmt.Errorf("unknown cart storage driver: %s", cfg.CartStorage)
	}
}

// MustCartRepository falls back to the file driver when the configured one
// cannot be reached, so a missing redis or database never blocks startup.
func MustCartRepository(cfg *config.Config) CartRepository {
	repo, err := NewCartRepository(cfg)
	if err != nil {
		log.Printf("Cart storage %q unavailable: %v", cfg.CartStorage, err)
		log.Println("Falling back to file cart storage")
		return NewFileCartRepository(cfg.CartFile)
	}
	return repo
}
