package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/flipdeck/internal/db"
	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/models"
	"github.com/vytor/flipdeck/internal/repository"
)

// insertChunk bounds the rows per INSERT so large decks stay under the
// sqlite bound-parameter limit.
const insertChunk = 200

type deckRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewDeckRepository creates a DeckRepository for the given driver's SQL dialect.
func NewDeckRepository(conn *sql.DB, driver db.Driver) repository.DeckRepository {
	return &deckRepository{db: conn, sb: statementBuilder(driver)}
}

func statementBuilder(driver db.Driver) squirrel.StatementBuilderType {
	if driver == db.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *deckRepository) List(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")

	query, args, err := r.sb.Select("id", "question", "answer").
		From("cards").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.Question, &c.Answer); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("loaded %d cards", len(cards))
	return cards, rows.Err()
}

func (r *deckRepository) Get(ctx context.Context, id int64) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")

	query, args, err := r.sb.Select("id", "question", "answer").
		From("cards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Card
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Question, &c.Answer)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("card not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *deckRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("cards").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).WithPrefix("deck_repo").Error("failed to count cards: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *deckRepository) InsertMany(ctx context.Context, cards []models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	if len(cards) == 0 {
		return nil
	}
	log.Debug("inserting %d cards", len(cards))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		for start := 0; start < len(cards); start += insertChunk {
			end := min(start+insertChunk, len(cards))

			insert := r.sb.Insert("cards").Columns("id", "question", "answer")
			for _, c := range cards[start:end] {
				insert = insert.Values(c.ID, c.Question, c.Answer)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				log.Error("failed to insert cards %d..%d: %v", start, end, err)
				return err
			}
		}
		return nil
	})
}
