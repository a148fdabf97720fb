// Package deck decodes, validates and seeds the question/answer deck.
package deck

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/models"
	"github.com/vytor/flipdeck/internal/repository"
)

var ErrEmptyDeck = errors.New("deck has no cards")

//go:embed reference_deck.json
var referenceDeck []byte

var validate = validator.New()

// Decode reads a JSON array of cards and validates every entry.
func Decode(r io.Reader) ([]models.Card, error) {
	var cards []models.Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if err := Validate(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Validate checks each card and that IDs are unique.
func Validate(cards []models.Card) error {
	if len(cards) == 0 {
		return ErrEmptyDeck
	}
	seen := make(map[int64]int, len(cards))
	for i, c := range cards {
		if err := validate.Struct(c); err != nil {
			return fmt.Errorf("card %d (position %d): %w", c.ID, i, err)
		}
		if prev, dup := seen[c.ID]; dup {
			return fmt.Errorf("card %d: duplicate id at positions %d and %d", c.ID, prev, i)
		}
		seen[c.ID] = i
	}
	return nil
}

// LoadFile decodes a deck from a JSON file.
func LoadFile(path string) ([]models.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

var (
	defaultOnce  sync.Once
	defaultCards []models.Card
)

// Default returns a copy of the built-in reference deck.
func Default() []models.Card {
	defaultOnce.Do(func() {
		cards, err := Decode(bytes.NewReader(referenceDeck))
		if err != nil {
			panic(fmt.Sprintf("embedded deck is invalid: %v", err))
		}
		defaultCards = cards
	})
	return append([]models.Card(nil), defaultCards...)
}

// Seed stores cards when the repository is empty. It returns the number of
// cards inserted, which is zero when a deck is already present.
func Seed(ctx context.Context, repo repository.DeckRepository, cards []models.Card) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("deck")

	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	if n > 0 {
		log.Debug("deck already present (%d cards), skipping seed", n)
		return 0, nil
	}
	if err := Validate(cards); err != nil {
		return 0, err
	}
	if err := repo.InsertMany(ctx, cards); err != nil {
		return 0, fmt.Errorf("insert cards: %w", err)
	}
	log.Info("seeded deck with %d cards", len(cards))
	return len(cards), nil
}

// Load reads the full deck from the repository, refusing an empty one.
func Load(ctx context.Context, repo repository.DeckRepository) ([]models.Card, error) {
	cards, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return cards, nil
}
