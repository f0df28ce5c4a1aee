package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/audit"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecorder_RecordAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := repository.NewRepository(zap.NewNop())
	rec := audit.NewRecorder(repo, zap.NewNop(), audit.WithClock(func() time.Time { return now }))

	bookID, patronID := 1, 2
	require.NoError(t, repo.Update(ctx, func(tx repository.Tx) error {
		rec.Record(tx, model.EventBookRegistered, nil, &bookID, audit.BookRegistered(model.Book{ID: 1, Title: "Dune"}))
		rec.Record(tx, model.EventLoanCreated, &patronID, &bookID, audit.LoanCreated(bookID, patronID))
		return nil
	}))

	logs, err := rec.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	require.Equal(t, model.EventBookRegistered, logs[0].EventType)
	require.Nil(t, logs[0].PatronID)
	require.Equal(t, 1, *logs[0].BookID)
	require.Equal(t, "Book 'Dune' registered with ID 1", logs[0].Description)
	require.Equal(t, now, logs[0].Timestamp)
	require.NotEmpty(t, logs[0].ID)

	require.Equal(t, model.EventLoanCreated, logs[1].EventType)
	require.Equal(t, 2, *logs[1].PatronID)
	require.Equal(t, "Book ID 1 lent to patron ID 2", logs[1].Description)
	require.NotEqual(t, logs[0].ID, logs[1].ID)
}

func TestRecorder_ListEmpty(t *testing.T) {
	t.Parallel()
	rec := audit.NewRecorder(repository.NewRepository(zap.NewNop()), zap.NewNop())
	logs, err := rec.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, logs)
	require.Empty(t, logs)
}
