package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

func newTestDeps(t *testing.T) (*docstore.Store, *audit.Dispatcher) {
	t.Helper()
	store := docstore.New(docstore.NewMemoryBlob(), zap.NewNop())
	dispatcher := audit.NewDispatcher(audit.New(zap.NewNop()))
	return store, dispatcher
}

func TestAddClient(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	ctx := context.Background()

	created, err := NewAdd(store, dispatcher).Execute(ctx, AddInput{Name: "  Maria  ", Phone: " 11 98888-0002 "})
	require.NoError(t, err)
	assert.Equal(t, "Maria", created.Name)
	assert.Equal(t, "11 98888-0002", created.Phone)
	assert.Nil(t, created.LastVisitAt)

	store.View(ctx, func(doc *models.Document) {
		require.NotNil(t, doc.FindClient(created.ID))
	})
}

func TestAddClientRequiresName(t *testing.T) {
	store, dispatcher := newTestDeps(t)

	_, err := NewAdd(store, dispatcher).Execute(context.Background(), AddInput{Name: "   "})
	assert.True(t, httperr.IsBusiness(err, "client_name_required"))
}

func TestRemoveClientCascadesAppointments(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	ctx := context.Background()

	err := store.Update(ctx, func(doc *models.Document) error {
		doc.Clients = []models.Client{
			{ID: "c1", Name: "João"},
			{ID: "c2", Name: "Maria"},
		}
		doc.Appointments = []models.Appointment{
			{ID: "a1", ClientID: "c1", Price: 30, DateAt: time.Now()},
			{ID: "a2", ClientID: "c2", Price: 25, DateAt: time.Now()},
			{ID: "a3", ClientID: "c1", Price: 50, DateAt: time.Now()},
		}
		return nil
	})
	require.NoError(t, err)

	err = NewRemove(store, dispatcher).Execute(ctx, "c1")
	require.NoError(t, err)

	store.View(ctx, func(doc *models.Document) {
		assert.Nil(t, doc.FindClient("c1"))
		require.NotNil(t, doc.FindClient("c2"))

		require.Len(t, doc.Appointments, 1)
		assert.Equal(t, "a2", doc.Appointments[0].ID)
	})
}

func TestRemoveUnknownClientIsIdempotent(t *testing.T) {
	store, dispatcher := newTestDeps(t)
	ctx := context.Background()

	err := store.Update(ctx, func(doc *models.Document) error {
		doc.Clients = []models.Client{{ID: "c1", Name: "João"}}
		return nil
	})
	require.NoError(t, err)

	err = NewRemove(store, dispatcher).Execute(ctx, "ghost")
	require.NoError(t, err)

	store.View(ctx, func(doc *models.Document) {
		require.Len(t, doc.Clients, 1)
	})
}
