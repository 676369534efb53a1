package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardCols = []string{"id", "name", "link", "owner", "created_at", "likes"}

func TestCardRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY c.created_at")).
		WillReturnRows(sqlmock.NewRows(cardCols).
			AddRow("c-1", "Yosemite", "https://x/y.jpg", "u-1", now, "{}").
			AddRow("c-2", "Baikal", "https://x/b.jpg", "u-2", now, "{u-1,u-2}"))

	cards, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.NotNil(t, cards[0].Likes)
	assert.Empty(t, cards[0].Likes)
	assert.Equal(t, []string{"u-1", "u-2"}, cards[1].Likes)
}

func TestCardRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.id = $1")).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows(cardCols).
			AddRow("c-1", "Yosemite", "https://x/y.jpg", "u-1", time.Now(), "{u-3}"))

	card, err := repo.FindByID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", card.Owner)
	assert.Equal(t, []string{"u-3"}, card.Likes)
}

func TestCardRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectQuery("WHERE c.id").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "c-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cards (name, link, owner)")).
		WithArgs("Yosemite", "https://x/y.jpg", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "link", "owner", "created_at"}).
			AddRow("c-1", "Yosemite", "https://x/y.jpg", "u-1", time.Now()))

	card, err := repo.Create(context.Background(), "Yosemite", "https://x/y.jpg", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", card.ID)
	assert.Equal(t, "u-1", card.Owner)
	assert.NotNil(t, card.Likes)
	assert.Empty(t, card.Likes)
}

func TestCardRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards WHERE id = $1 AND owner = $2")).
		WithArgs("c-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c-1", "u-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Delete_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec("DELETE FROM cards").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "c-1", "u-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepository_AddLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (card_id, user_id) DO NOTHING")).
		WithArgs("c-1", "u-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("WHERE c.id").
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows(cardCols).
			AddRow("c-1", "Yosemite", "https://x/y.jpg", "u-1", time.Now(), "{u-2}"))

	card, err := repo.AddLike(context.Background(), "c-1", "u-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u-2"}, card.Likes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_AddLike_MissingCard(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec("INSERT INTO card_likes").
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.AddLike(context.Background(), "c-1", "u-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepository_RemoveLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2")).
		WithArgs("c-1", "u-2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("WHERE c.id").
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows(cardCols).
			AddRow("c-1", "Yosemite", "https://x/y.jpg", "u-1", time.Now(), "{}"))

	card, err := repo.RemoveLike(context.Background(), "c-1", "u-2")
	require.NoError(t, err)
	assert.Empty(t, card.Likes)
}

func TestCardRepository_RemoveLike_MissingCard(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec("DELETE FROM card_likes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("WHERE c.id").WillReturnError(sql.ErrNoRows)

	_, err := repo.RemoveLike(context.Background(), "c-1", "u-2")
	assert.ErrorIs(t, err, ErrNotFound)
}
