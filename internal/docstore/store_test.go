package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

// countingBlob conta gravações para verificar que load sobre documento
// atual não dispara save nenhum.
type countingBlob struct {
	Blob
	saves int
}

func (c *countingBlob) Save(ctx context.Context, data []byte) error {
	c.saves++
	return c.Blob.Save(ctx, data)
}

func newTestStore() (*Store, *countingBlob) {
	blob := &countingBlob{Blob: NewMemoryBlob()}
	return New(blob, zap.NewNop()), blob
}

func TestLoadSeedsWhenEmpty(t *testing.T) {
	store, blob := newTestStore()
	ctx := context.Background()

	doc := store.Load(ctx)

	require.NotNil(t, doc)
	assert.Equal(t, models.SchemaVersion, doc.Version)
	assert.Equal(t, "Barbearia Ousadia", doc.BarbershopName)
	assert.Len(t, doc.Services, 3)
	assert.Len(t, doc.Barbers, 1)
	assert.Empty(t, doc.Clients)
	assert.Empty(t, doc.Appointments)
	assert.Empty(t, doc.SchedulingRequests)
	assert.Equal(t, 1, blob.saves, "seed deve ser persistido")
}

func TestLoadDefaultBarberInvariant(t *testing.T) {
	store, _ := newTestStore()
	doc := store.Load(context.Background())

	require.NotEmpty(t, doc.Barbers)

	defaults := 0
	for _, b := range doc.Barbers {
		if b.IsDefault {
			defaults++
			assert.Equal(t, doc.DefaultBarberID, b.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestLoadIsNoopWhenCurrent(t *testing.T) {
	store, blob := newTestStore()
	ctx := context.Background()

	first := store.Load(ctx)
	require.Equal(t, 1, blob.saves)

	second := store.Load(ctx)
	assert.Equal(t, 1, blob.saves, "load de documento atual não grava nada")
	assert.True(t, first.UpdatedAt.Equal(second.UpdatedAt))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	doc := store.Load(ctx)
	doc.BarbershopName = "Navalha de Ouro"
	doc.Services = append(doc.Services, models.Service{ID: "svc-x", Name: "Sobrancelha", Price: 15})
	store.Save(ctx, doc)

	loaded := store.Load(ctx)
	assert.Equal(t, "Navalha de Ouro", loaded.BarbershopName)
	assert.Equal(t, doc.Services, loaded.Services)
	assert.Equal(t, doc.Barbers, loaded.Barbers)
	assert.Equal(t, doc.DefaultBarberID, loaded.DefaultBarberID)
	assert.True(t, doc.CreatedAt.Equal(loaded.CreatedAt))
}

func TestSaveStampsUpdatedAt(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	doc := store.Load(ctx)
	before := doc.UpdatedAt

	restore := timeNow
	timeNow = func() time.Time { return before.Add(time.Hour) }
	defer func() { timeNow = restore }()

	store.Save(ctx, doc)
	assert.True(t, doc.UpdatedAt.After(before))
}

func TestLoadFallsBackOnReadFailure(t *testing.T) {
	mem := NewMemoryBlob()
	mem.FailLoad = errors.New("storage indisponível")
	store := New(mem, zap.NewNop())

	doc := store.Load(context.Background())
	require.NotNil(t, doc)
	assert.Equal(t, models.SchemaVersion, doc.Version)
}

func TestLoadFallsBackOnCorruptPayload(t *testing.T) {
	mem := NewMemoryBlob()
	require.NoError(t, mem.Save(context.Background(), []byte("{nem json")))
	store := New(mem, zap.NewNop())

	doc := store.Load(context.Background())
	require.NotNil(t, doc)
	assert.Equal(t, "Barbearia Ousadia", doc.BarbershopName)
}

func TestSaveFailureKeepsSessionUsable(t *testing.T) {
	mem := NewMemoryBlob()
	store := New(mem, zap.NewNop())
	ctx := context.Background()

	doc := store.Load(ctx)

	mem.FailSave = errors.New("quota excedida")
	doc.BarbershopName = "Sem Persistência"
	store.Save(ctx, doc) // não deve subir erro nem pânico

	// o estado em memória continua valendo para a sessão
	assert.Equal(t, "Sem Persistência", doc.BarbershopName)
}

func TestUpdateAbortsOnBusinessError(t *testing.T) {
	store, blob := newTestStore()
	ctx := context.Background()

	store.Load(ctx)
	savesBefore := blob.saves

	sentinel := errors.New("regra violada")
	err := store.Update(ctx, func(doc *models.Document) error {
		doc.BarbershopName = "não deve persistir"
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, savesBefore, blob.saves)
	assert.Equal(t, "Barbearia Ousadia", store.Load(ctx).BarbershopName)
}

func TestResetReseeds(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	_ = store.Update(ctx, func(doc *models.Document) error {
		doc.BarbershopName = "Mudada"
		return nil
	})

	doc := store.Reset(ctx)
	assert.Equal(t, "Barbearia Ousadia", doc.BarbershopName)
}

func TestLoadMigratesOldDocumentAndPersists(t *testing.T) {
	// documento v1: sem barbeiros, sem pedidos, sem ui
	old := map[string]any{
		"version":        1,
		"barbershopName": "Antiga",
		"services":       []any{},
		"clients":        []any{},
		"appointments": []any{
			map[string]any{
				"id":        "apt-1",
				"clientId":  "cli-1",
				"serviceId": "svc-1",
				"price":     30,
				"dateAt":    "2023-05-01T12:00:00Z",
			},
		},
		"createdAt": "2023-01-01T00:00:00Z",
		"updatedAt": "2023-01-01T00:00:00Z",
	}
	raw, err := json.Marshal(old)
	require.NoError(t, err)

	mem := NewMemoryBlob()
	require.NoError(t, mem.Save(context.Background(), raw))
	blob := &countingBlob{Blob: mem}
	store := New(blob, zap.NewNop())

	doc := store.Load(context.Background())

	assert.Equal(t, models.SchemaVersion, doc.Version)
	assert.Equal(t, "Antiga", doc.BarbershopName, "migração nunca apaga dados")
	require.Len(t, doc.Barbers, 1)
	assert.True(t, doc.Barbers[0].IsDefault)
	assert.Equal(t, doc.Barbers[0].ID, doc.DefaultBarberID)
	require.Len(t, doc.Appointments, 1)
	assert.Equal(t, doc.DefaultBarberID, doc.Appointments[0].BarberID,
		"atendimento antigo herda o barbeiro padrão")
	assert.NotNil(t, doc.SchedulingRequests)
	assert.Equal(t, 1, blob.saves, "forma migrada é persistida antes de retornar")

	// segundo load: nada a migrar, nada a gravar
	store.Load(context.Background())
	assert.Equal(t, 1, blob.saves)
}
