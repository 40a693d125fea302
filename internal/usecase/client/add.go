package client

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

type AddInput struct {
	Name  string
	Phone string
}

type Add struct {
	store *docstore.Store
	audit *audit.Dispatcher
}

func NewAdd(store *docstore.Store, audit *audit.Dispatcher) *Add {
	return &Add{store: store, audit: audit}
}

func (uc *Add) Execute(ctx context.Context, in AddInput) (*models.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	var created models.Client

	err := uc.store.Update(ctx, func(doc *models.Document) error {
		created = models.Client{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: strings.TrimSpace(in.Phone),
		}
		doc.Clients = append(doc.Clients, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_added",
		Entity:   "client",
		EntityID: created.ID,
	})

	return &created, nil
}
