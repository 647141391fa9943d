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

var notificationColumnNames = []string{"id", "user_id", "message", "detailed_message", "related_report_id", "is_read", "created_at", "report_type", "report_status", "report_date_time"}

func TestNotificationRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	reportID := int64(2)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs("owner", "carol wants to claim your found item.", nil, reportID, false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	n := &models.Notification{UserID: "owner", Message: "carol wants to claim your found item.", RelatedReportID: &reportID}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int64(21), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepositoryListScopedToRecipient(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	now := time.Now()
	unread := false
	mock.ExpectQuery(regexp.QuoteMeta("WHERE n.user_id = $1 AND n.is_read = $2 ORDER BY n.created_at DESC")).
		WithArgs("owner", false).
		WillReturnRows(sqlmock.NewRows(notificationColumnNames).
			AddRow(int64(21), "owner", "carol wants to claim your found item.", "mine", int64(2), false, now, "found", "approved", now).
			AddRow(int64(20), "owner", "orphaned", nil, nil, false, now, nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications n WHERE n.user_id = $1 AND n.is_read = $2")).
		WithArgs("owner", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	items, total, err := repo.List(context.Background(), models.NotificationFilter{UserID: "owner", IsRead: &unread})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].RelatedReport)
	assert.Equal(t, models.ReportTypeFound, items[0].RelatedReport.Type)
	assert.Equal(t, int64(2), items[0].RelatedReport.ID)
	assert.Nil(t, items[1].RelatedReport)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepositorySetRead(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = $2 WHERE id = $1")).
		WithArgs(int64(21), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetRead(context.Background(), 21, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
