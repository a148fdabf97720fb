package flashcard

import (
	"math/rand"

	"github.com/vytor/flipdeck/internal/models"
)

// Sample draws min(size, len(deck)) distinct cards in random order.
// deck is left untouched. A nil rng falls back to the global source.
func Sample(deck []models.Card, size int, rng *rand.Rand) []models.Card {
	if size <= 0 || len(deck) == 0 {
		return nil
	}

	cards := make([]models.Card, len(deck))
	copy(cards, deck)

	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if rng != nil {
		rng.Shuffle(len(cards), swap)
	} else {
		rand.Shuffle(len(cards), swap)
	}

	if size < len(cards) {
		cards = cards[:size]
	}
	return cards
}
