package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	donationModel "bayanihan_backend/internals/features/donations/model"
)

func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestApplyDecisionConfirmsPendingRow(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectExec(`UPDATE "donations" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	decided, err := ApplyDecision(db, uuid.New(), donationModel.DonationConfirmed)
	require.NoError(t, err)
	assert.True(t, decided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDecisionLosesRaceWhenRowNoLongerPending(t *testing.T) {
	db, mock := openMockDB(t)

	// a concurrent confirm already moved the row out of pending, so the
	// guarded update matches nothing
	mock.ExpectExec(`UPDATE "donations" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	decided, err := ApplyDecision(db, uuid.New(), donationModel.DonationRejected)
	require.NoError(t, err)
	assert.False(t, decided)
	assert.NoError(t, mock.ExpectationsWereMet())
}
