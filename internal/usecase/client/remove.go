package client

import (
	"context"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

type Remove struct {
	store *docstore.Store
	audit *audit.Dispatcher
}

func NewRemove(store *docstore.Store, audit *audit.Dispatcher) *Remove {
	return &Remove{store: store, audit: audit}
}

// Execute remove o cliente e, em cascata, todos os atendimentos dele.
// Id inexistente é idempotente: nada muda.
func (uc *Remove) Execute(ctx context.Context, clientID string) error {
	err := uc.store.Update(ctx, func(doc *models.Document) error {
		clients := doc.Clients[:0]
		for i := range doc.Clients {
			if doc.Clients[i].ID != clientID {
				clients = append(clients, doc.Clients[i])
			}
		}
		doc.Clients = clients

		appointments := doc.Appointments[:0]
		for i := range doc.Appointments {
			if doc.Appointments[i].ClientID != clientID {
				appointments = append(appointments, doc.Appointments[i])
			}
		}
		doc.Appointments = appointments
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_removed",
		Entity:   "client",
		EntityID: clientID,
	})
	return nil
}
