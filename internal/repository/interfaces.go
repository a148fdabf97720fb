package repository

import (
	"context"

	"github.com/vytor/flipdeck/internal/models"
)

// DeckRepository is the read side of the card store plus the bulk insert
// used once to seed it.
type DeckRepository interface {
	List(ctx context.Context) ([]models.Card, error)
	Get(ctx context.Context, id int64) (*models.Card, error)
	Count(ctx context.Context) (int, error)
	InsertMany(ctx context.Context, cards []models.Card) error
}
