package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

func seededAlertRepo() *fakeAlertRepo {
	repo := &fakeAlertRepo{}
	repo.alerts = append(repo.alerts, &entity.StockAlert{
		ID:           "alert-1",
		MedicationID: "med-1",
		Type:         entity.AlertTypeLowStock,
		Message:      "Stock de Ibuprofeno bajo (5 restantes, mínimo 10)",
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	})
	return repo
}

func TestMarkRead_MarcaLaAlerta(t *testing.T) {
	repo := seededAlertRepo()
	uc := alerts.NewAlertUseCase(repo, func() time.Time { return testNow })

	require.NoError(t, uc.MarkRead("alert-1"))
	assert.True(t, repo.alerts[0].IsRead)
}

func TestMarkRead_NoEncontrada(t *testing.T) {
	uc := alerts.NewAlertUseCase(&fakeAlertRepo{}, func() time.Time { return testNow })

	assert.ErrorIs(t, uc.MarkRead("no-existe"), domain.ErrNotFound)
}

func TestResolve_Manual(t *testing.T) {
	repo := seededAlertRepo()
	resolvedAt := testNow.Add(time.Hour)
	uc := alerts.NewAlertUseCase(repo, func() time.Time { return resolvedAt })

	require.NoError(t, uc.Resolve("alert-1", "user-7"))

	alert := repo.alerts[0]
	assert.True(t, alert.IsResolved)
	require.NotNil(t, alert.ResolvedAt)
	assert.Equal(t, resolvedAt, *alert.ResolvedAt)
	assert.Equal(t, "user-7", alert.ResolvedBy)
}

func TestResolve_YaResueltaRetornaConflicto(t *testing.T) {
	repo := seededAlertRepo()
	uc := alerts.NewAlertUseCase(repo, func() time.Time { return testNow })

	require.NoError(t, uc.Resolve("alert-1", "user-7"))
	assert.ErrorIs(t, uc.Resolve("alert-1", "user-8"), domain.ErrConflict,
		"resolver dos veces debe fallar con conflicto")
}

func TestResolve_NoEncontrada(t *testing.T) {
	uc := alerts.NewAlertUseCase(&fakeAlertRepo{}, func() time.Time { return testNow })

	assert.ErrorIs(t, uc.Resolve("no-existe", "user-1"), domain.ErrNotFound)
}
