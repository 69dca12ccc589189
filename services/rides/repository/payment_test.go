package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wheelshare/internal/pkg/models"
	"github.com/piresc/wheelshare/services/rides"
	"github.com/piresc/wheelshare/services/rides/repository"
)

func newPayment() *models.Payment {
	return &models.Payment{
		ID:        uuid.New(),
		RideID:    uuid.New(),
		Amount:    145.87,
		Method:    models.PaymentMethodCash,
		Status:    models.PaymentStatusCompleted,
		CreatedAt: at,
	}
}

func TestRecordPayment(t *testing.T) {
	t.Run("Payment and credit", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPaymentRepository(&models.Config{}, db)

		payment := newPayment()
		credit := &models.WalletEntry{ID: uuid.New(), DriverID: uuid.New(), RideID: &payment.RideID, Amount: 131.28, TransactionType: models.WalletCredit, CreatedAt: at}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (ride_id) DO NOTHING")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.RecordPayment(context.Background(), payment, credit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Without driver credit", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPaymentRepository(&models.Config{}, db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.RecordPayment(context.Background(), newPayment(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate payment", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPaymentRepository(&models.Config{}, db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.RecordPayment(context.Background(), newPayment(), &models.WalletEntry{ID: uuid.New()})
		assert.ErrorIs(t, err, rides.ErrNotApplied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListWalletEntries(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(&models.Config{}, db)

	driverID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "driver_id", "ride_id", "amount", "transaction_type", "description", "created_at"}).
		AddRow(uuid.NewString(), driverID.String(), uuid.NewString(), 131.28, "CREDIT", "Earning", at).
		AddRow(uuid.NewString(), driverID.String(), nil, 20.0, "DEBIT", "Payout", at)
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(driverID).
		WillReturnRows(rows)

	entries, err := repo.ListWalletEntries(context.Background(), driverID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotNil(t, entries[0].RideID)
	assert.Nil(t, entries[1].RideID)
	assert.Equal(t, models.WalletDebit, entries[1].TransactionType)
}
