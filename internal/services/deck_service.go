package services

import (
	"context"

	"github.com/vytor/flipdeck/internal/errors"
	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/models"
	"github.com/vytor/flipdeck/internal/repository"
)

// DeckService exposes the read-only deck to the HTTP layer.
type DeckService interface {
	Cards(ctx context.Context) ([]models.Card, error)
	Card(ctx context.Context, id int64) (*models.Card, error)
}

type deckService struct {
	repo repository.DeckRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(repo repository.DeckRepository) DeckService {
	return &deckService{repo: repo}
}

func (s *deckService) Cards(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	cards, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

func (s *deckService) Card(ctx context.Context, id int64) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting card: id=%d", id)

	if id <= 0 {
		return nil, errors.NewValidationError("id", "must be positive")
	}

	card, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}
