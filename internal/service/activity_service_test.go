package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/danyol08/transaction/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentMostRecentFirstAndClamped(t *testing.T) {
	repo := &stubActivityRepo{}
	for i := 0; i < 60; i++ {
		err := repo.Append(context.Background(), &model.ActivityLogEntry{
			CashierUsername: "admin",
			Action:          model.ActionAddCashier,
			Details:         fmt.Sprintf("created cashier %d", i),
		})
		require.NoError(t, err)
	}
	svc := NewActivityService(repo, 50)

	entries, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 50, "zero limit means one full page")
	assert.Equal(t, "created cashier 59", entries[0].Details, "most recent first")

	entries, err = svc.Recent(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, entries, 50, "limit clamped to the page size")

	entries, err = svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRecentStoreFailure(t *testing.T) {
	svc := NewActivityService(&stubActivityRepo{failWith: errStoreDown}, 50)

	_, err := svc.Recent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
