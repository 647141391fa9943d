package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/models"
)

var claimColumnNames = []string{
	"id", "report_id", "claimed_by", "message", "received", "date_claimed", "date_received", "received_from", "supervised_by", "verified_by",
	"claimant.id", "claimant.username", "claimant.email", "claimant.first_name", "claimant.last_name", "claimant.profile_avatar_url",
}

func TestClaimRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClaimRepository(db)

	message := "That's mine, it has my initials"
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO claims")).
		WithArgs(int64(2), "u2", message, false, sqlmock.AnyArg(), nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	claim := &models.Claim{ReportID: 2, ClaimedBy: "u2", Message: &message}
	require.NoError(t, repo.Create(context.Background(), claim))
	assert.Equal(t, int64(5), claim.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepositoryListOwn(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClaimRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE cl.claimed_by = $1 ORDER BY cl.date_claimed DESC")).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows(claimColumnNames).
			AddRow(int64(5), int64(2), "u2", "mine", false, now, nil, nil, nil, nil, "u2", "carol", "carol@example.com", "Carol", "", ""))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM claims cl WHERE cl.claimed_by = $1")).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	claims, total, err := repo.List(context.Background(), models.ClaimFilter{ClaimedBy: "u2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, claims, 1)
	assert.Equal(t, "carol", claims[0].Claimant.Username)
	require.NotNil(t, claims[0].Message)
	assert.Equal(t, "mine", *claims[0].Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClaimRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM claims cl JOIN users u ON u.id = cl.claimed_by ORDER BY")).
		WillReturnRows(sqlmock.NewRows(claimColumnNames))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM claims cl")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, total, err := repo.List(context.Background(), models.ClaimFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClaimRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE claims SET message =")).WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	require.NoError(t, repo.Update(context.Background(), &models.Claim{ID: 5, Received: true, DateReceived: &now}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
