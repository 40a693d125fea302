package barber

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

func (uc *Add) Execute(ctx context.Context, in AddInput) (*models.Barber, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("barber_name_required")
	}

	var created models.Barber

	err := uc.store.Update(ctx, func(doc *models.Document) error {
		created = models.Barber{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: strings.TrimSpace(in.Phone),
		}
		doc.Barbers = append(doc.Barbers, created)

		// lista estava vazia: o recém-chegado vira o padrão
		if len(doc.Barbers) == 1 {
			docstore.SetDefaultBarber(doc, created.ID)
			created.IsDefault = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_added",
		Entity:   "barber",
		EntityID: created.ID,
	})

	return &created, nil
}
