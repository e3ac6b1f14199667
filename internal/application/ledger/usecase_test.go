package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/application/ledger"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos + TxRunner
// ──────────────────────────────────────────────────────────────────────────────

type fakeMedRepo struct {
	meds map[string]*entity.Medication
}

func (f *fakeMedRepo) Create(med *entity.Medication) error {
	cp := *med
	f.meds[med.ID] = &cp
	return nil
}

func (f *fakeMedRepo) GetByID(id string) (*entity.Medication, error) {
	med, ok := f.meds[id]
	if !ok {
		return nil, nil
	}
	cp := *med
	return &cp, nil
}

func (f *fakeMedRepo) GetForUpdate(id string) (*entity.Medication, error) {
	return f.GetByID(id)
}

func (f *fakeMedRepo) Update(med *entity.Medication) error {
	cp := *med
	f.meds[med.ID] = &cp
	return nil
}

func (f *fakeMedRepo) UpdateStock(id string, newStock int, updatedAt time.Time) error {
	med, ok := f.meds[id]
	if !ok {
		return domain.ErrNotFound
	}
	med.CurrentStock = newStock
	med.UpdatedAt = updatedAt
	return nil
}

func (f *fakeMedRepo) List(filter repository.MedicationFilter, limit, offset int) ([]*entity.Medication, int, error) {
	return nil, 0, nil
}

func (f *fakeMedRepo) Delete(id string) error {
	delete(f.meds, id)
	return nil
}

type fakeMovRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovRepo) Create(mov *entity.StockMovement) error {
	cp := *mov
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error) {
	return f.movements, len(f.movements), nil
}

func (f *fakeMovRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeAlertRepo struct {
	alerts []*entity.StockAlert
}

func (f *fakeAlertRepo) Create(alert *entity.StockAlert) error {
	cp := *alert
	f.alerts = append(f.alerts, &cp)
	return nil
}

func (f *fakeAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	for _, a := range f.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) GetUnresolved(medicationID, alertType string) (*entity.StockAlert, error) {
	for _, a := range f.alerts {
		if a.MedicationID == medicationID && a.Type == alertType && !a.IsResolved {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) MarkRead(id string, updatedAt time.Time) error { return nil }

func (f *fakeAlertRepo) Resolve(id string, resolvedAt time.Time, resolvedBy string) error {
	for _, a := range f.alerts {
		if a.ID == id {
			a.IsResolved = true
			a.ResolvedAt = &resolvedAt
			a.ResolvedBy = resolvedBy
		}
	}
	return nil
}

func (f *fakeAlertRepo) List(filter repository.AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error) {
	return f.alerts, len(f.alerts), nil
}

func (f *fakeAlertRepo) ListUnresolved(limit int) ([]*entity.StockAlert, error) {
	return f.alerts, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción
// real. Suficiente para verificar la lógica del ledger; la atomicidad y el
// bloqueo de fila los aporta el TxRunner de postgres en producción.
type fakeTxRunner struct {
	medRepo   *fakeMedRepo
	movRepo   *fakeMovRepo
	alertRepo *fakeAlertRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	medRepo repository.MedicationRepository,
	movRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	return fn(f.medRepo, f.movRepo, f.alertRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type ledgerFixture struct {
	uc        *ledger.StockLedgerUseCase
	medRepo   *fakeMedRepo
	movRepo   *fakeMovRepo
	alertRepo *fakeAlertRepo
}

func newLedgerFixture(meds ...*entity.Medication) *ledgerFixture {
	medRepo := &fakeMedRepo{meds: map[string]*entity.Medication{}}
	for _, m := range meds {
		medRepo.meds[m.ID] = m
	}
	movRepo := &fakeMovRepo{}
	alertRepo := &fakeAlertRepo{}
	runner := &fakeTxRunner{medRepo: medRepo, movRepo: movRepo, alertRepo: alertRepo}
	uc := ledger.NewStockLedgerUseCase(runner, movRepo, alerts.NewReconciler(), func() time.Time { return testNow })
	return &ledgerFixture{uc: uc, medRepo: medRepo, movRepo: movRepo, alertRepo: alertRepo}
}

func testMedication(stock, minimum int) *entity.Medication {
	expiry := testNow.AddDate(1, 0, 0)
	return &entity.Medication{
		ID:           "med-1",
		Name:         "Paracetamol",
		CurrentStock: stock,
		MinimumStock: minimum,
		ExpiryDate:   &expiry,
	}
}

func movementInput(movType string, qty int) ledger.MovementInput {
	return ledger.MovementInput{
		MedicationID: "med-1",
		UserID:       "user-1",
		Type:         movType,
		Quantity:     qty,
		Reason:       "compra",
		MovementDate: testNow,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaActualizaStockYSnapshots(t *testing.T) {
	fx := newLedgerFixture(testMedication(10, 5))

	mov, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeIncoming, 25))
	require.NoError(t, err)

	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 35, mov.NewStock)
	assert.Equal(t, "user-1", mov.UserID)
	assert.Equal(t, 35, fx.medRepo.meds["med-1"].CurrentStock, "el contador debe quedar igual al snapshot")
	require.Len(t, fx.movRepo.movements, 1)
}

func TestRecordMovement_SalidaDescuentaStock(t *testing.T) {
	fx := newLedgerFixture(testMedication(10, 2))

	mov, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeOutgoing, 4))
	require.NoError(t, err)

	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 6, mov.NewStock)
	assert.Equal(t, 6, fx.medRepo.meds["med-1"].CurrentStock)
}

func TestRecordMovement_RoundTripRestauraElStock(t *testing.T) {
	// Entrada de Q seguida de salida de Q deja el stock exactamente como estaba.
	fx := newLedgerFixture(testMedication(17, 2))

	_, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeIncoming, 9))
	require.NoError(t, err)
	_, err = fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeOutgoing, 9))
	require.NoError(t, err)

	assert.Equal(t, 17, fx.medRepo.meds["med-1"].CurrentStock)
	assert.Len(t, fx.movRepo.movements, 2, "ambos movimientos quedan en el historial")
}

func TestRecordMovement_SobregiroRechazadoSinEscribir(t *testing.T) {
	fx := newLedgerFixture(testMedication(3, 1))

	_, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeOutgoing, 5))
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.CurrentStock, "el error debe informar el stock disponible")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, fx.medRepo.meds["med-1"].CurrentStock, "el contador no debe cambiar")
	assert.Empty(t, fx.movRepo.movements, "no debe registrarse movimiento")
	assert.Empty(t, fx.alertRepo.alerts, "no debe reconciliarse nada")
}

func TestRecordMovement_SalidaExactaDejaStockCero(t *testing.T) {
	fx := newLedgerFixture(testMedication(5, 1))

	mov, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeOutgoing, 5))
	require.NoError(t, err, "dejar el stock en cero exacto es válido")
	assert.Equal(t, 0, mov.NewStock)
}

func TestRecordMovement_SalidaQueCruzaElMinimoAbreAlerta(t *testing.T) {
	fx := newLedgerFixture(testMedication(20, 10))

	_, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeOutgoing, 12))
	require.NoError(t, err)

	require.Len(t, fx.alertRepo.alerts, 1, "cruzar el mínimo debe abrir la alerta low_stock")
	alert := fx.alertRepo.alerts[0]
	assert.Equal(t, entity.AlertTypeLowStock, alert.Type)
	assert.Equal(t, "med-1", alert.MedicationID)
	assert.False(t, alert.IsResolved)
}

func TestRecordMovement_ReposicionResuelveLaAlerta(t *testing.T) {
	fx := newLedgerFixture(testMedication(20, 10))

	_, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeOutgoing, 15))
	require.NoError(t, err)
	require.Len(t, fx.alertRepo.alerts, 1)

	_, err = fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeIncoming, 30))
	require.NoError(t, err)

	alert := fx.alertRepo.alerts[0]
	assert.True(t, alert.IsResolved, "reponer por encima del mínimo debe auto-resolver")
	assert.Equal(t, "user-1", alert.ResolvedBy)
}

func TestRecordMovement_MedicamentoInexistente(t *testing.T) {
	fx := newLedgerFixture()

	_, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeIncoming, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_ValidacionDeEntrada(t *testing.T) {
	fx := newLedgerFixture(testMedication(10, 2))

	cases := []struct {
		name  string
		input ledger.MovementInput
	}{
		{"tipo desconocido", func() ledger.MovementInput {
			in := movementInput("transfer", 1)
			return in
		}()},
		{"cantidad cero", movementInput(entity.MovementTypeIncoming, 0)},
		{"cantidad negativa", movementInput(entity.MovementTypeOutgoing, -3)},
		{"sin medicamento", func() ledger.MovementInput {
			in := movementInput(entity.MovementTypeIncoming, 1)
			in.MedicationID = ""
			return in
		}()},
		{"sin usuario", func() ledger.MovementInput {
			in := movementInput(entity.MovementTypeIncoming, 1)
			in.UserID = ""
			return in
		}()},
		{"sin razón", func() ledger.MovementInput {
			in := movementInput(entity.MovementTypeIncoming, 1)
			in.Reason = ""
			return in
		}()},
		{"sin fecha de movimiento", func() ledger.MovementInput {
			in := movementInput(entity.MovementTypeIncoming, 1)
			in.MovementDate = time.Time{}
			return in
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.RecordMovement(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, fx.movRepo.movements, "la validación rechaza antes de escribir")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetMovement_NoEncontrado(t *testing.T) {
	fx := newLedgerFixture()

	_, err := fx.uc.GetMovement("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMovements_DevuelveHistorial(t *testing.T) {
	fx := newLedgerFixture(testMedication(10, 2))

	_, err := fx.uc.RecordMovement(context.Background(), movementInput(entity.MovementTypeIncoming, 5))
	require.NoError(t, err)

	out, err := fx.uc.ListMovements(repository.MovementFilter{MedicationID: "med-1"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page.Total)
	assert.Equal(t, 10, out.Items[0].PreviousStock)
	assert.Equal(t, 15, out.Items[0].NewStock)
}
