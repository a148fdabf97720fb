package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/flipdeck/internal/db"
	"github.com/vytor/flipdeck/internal/models"
)

// NewTestDB opens an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Cards returns n valid cards with ids 1..n.
func Cards(n int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		id := int64(i + 1)
		cards[i] = models.Card{
			ID:       id,
			Question: "Question " + strconv.FormatInt(id, 10),
			Answer:   "**Answer** " + strconv.FormatInt(id, 10),
		}
	}
	return cards
}

