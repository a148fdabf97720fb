package sqldb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/flipdeck/internal/db"
	"github.com/vytor/flipdeck/internal/models"
	"github.com/vytor/flipdeck/internal/repository"
	"github.com/vytor/flipdeck/internal/repository/sqldb"
	"github.com/vytor/flipdeck/internal/testutil"
)

type DeckRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.DeckRepository
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqldb.NewDeckRepository(s.db.DB, s.db.Driver)
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) TestEmptyDeck() {
	ctx := context.Background()

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, n)

	cards, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Assert().Empty(cards)
}

func (s *DeckRepositorySuite) TestInsertManyAndList() {
	ctx := context.Background()
	cards := []models.Card{
		{ID: 3, Question: "What is Green OA?", Answer: "**Green OA** is self-archiving."},
		{ID: 1, Question: "What is OA?", Answer: "**Open Access**"},
		{ID: 2, Question: "What is Gold OA?", Answer: "**Gold OA**"},
	}

	s.Require().NoError(s.repo.InsertMany(ctx, cards))

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(3, n)

	got, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal(int64(1), got[0].ID, "list is ordered by id")
	s.Assert().Equal(int64(3), got[2].ID)
	s.Assert().Equal("**Green OA** is self-archiving.", got[2].Answer)
}

func (s *DeckRepositorySuite) TestInsertManyLargeDeckIsChunked() {
	ctx := context.Background()

	s.Require().NoError(s.repo.InsertMany(ctx, testutil.Cards(450)))

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(450, n)
}

func (s *DeckRepositorySuite) TestInsertManyRollsBackOnDuplicate() {
	ctx := context.Background()
	s.Require().NoError(s.repo.InsertMany(ctx, testutil.Cards(2)))

	err := s.repo.InsertMany(ctx, []models.Card{
		{ID: 10, Question: "new", Answer: "new"},
		{ID: 1, Question: "dup", Answer: "dup"},
	})
	s.Require().Error(err)

	n, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(2, n, "failed batch must not leave partial rows")
}

func (s *DeckRepositorySuite) TestInsertManyEmptyIsNoop() {
	s.Require().NoError(s.repo.InsertMany(context.Background(), nil))
}

func (s *DeckRepositorySuite) TestGet() {
	ctx := context.Background()
	s.Require().NoError(s.repo.InsertMany(ctx, testutil.Cards(3)))

	card, err := s.repo.Get(ctx, 2)
	s.Require().NoError(err)
	s.Require().NotNil(card)
	s.Assert().Equal("Question 2", card.Question)

	missing, err := s.repo.Get(ctx, 99)
	s.Require().NoError(err)
	s.Assert().Nil(missing)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}
