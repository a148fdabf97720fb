package services_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flipdeck/internal/errors"
	"github.com/vytor/flipdeck/internal/models"
	"github.com/vytor/flipdeck/internal/services"
	"github.com/vytor/flipdeck/internal/testutil/mocks"
)

func TestDeckService_Cards(t *testing.T) {
	repo := new(mocks.MockDeckRepository)
	cards := []models.Card{{ID: 1, Question: "q", Answer: "a"}}
	repo.On("List", mock.Anything).Return(cards, nil)

	got, err := services.NewDeckService(repo).Cards(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cards, got)
	repo.AssertExpectations(t)
}

func TestDeckService_CardsNeverNil(t *testing.T) {
	repo := new(mocks.MockDeckRepository)
	repo.On("List", mock.Anything).Return(nil, nil)

	got, err := services.NewDeckService(repo).Cards(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeckService_CardsRepositoryError(t *testing.T) {
	repo := new(mocks.MockDeckRepository)
	repo.On("List", mock.Anything).Return(nil, stderrors.New("boom"))

	_, err := services.NewDeckService(repo).Cards(context.Background())

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestDeckService_Card(t *testing.T) {
	tests := []struct {
		name       string
		id         int64
		setup      func(*mocks.MockDeckRepository)
		wantStatus int
	}{
		{
			name: "found",
			id:   3,
			setup: func(r *mocks.MockDeckRepository) {
				r.On("Get", mock.Anything, int64(3)).Return(&models.Card{ID: 3, Question: "q", Answer: "a"}, nil)
			},
		},
		{
			name: "not found",
			id:   4,
			setup: func(r *mocks.MockDeckRepository) {
				r.On("Get", mock.Anything, int64(4)).Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			id:         0,
			setup:      func(*mocks.MockDeckRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "repository error",
			id:   5,
			setup: func(r *mocks.MockDeckRepository) {
				r.On("Get", mock.Anything, int64(5)).Return(nil, stderrors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockDeckRepository)
			tt.setup(repo)

			card, err := services.NewDeckService(repo).Card(context.Background(), tt.id)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.id, card.ID)
				return
			}
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
			repo.AssertExpectations(t)
		})
	}
}
