package barber

import (
	"context"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

type SetDefault struct {
	store *docstore.Store
	audit *audit.Dispatcher
}

func NewSetDefault(store *docstore.Store, audit *audit.Dispatcher) *SetDefault {
	return &SetDefault{store: store, audit: audit}
}

// Execute marca o barbeiro como padrão. Id inexistente é no-op silencioso
// (defensivo; o consumidor nunca manda id inválido na prática).
func (uc *SetDefault) Execute(ctx context.Context, barberID string) error {
	err := uc.store.Update(ctx, func(doc *models.Document) error {
		docstore.SetDefaultBarber(doc, barberID)
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_set_default",
		Entity:   "barber",
		EntityID: barberID,
	})
	return nil
}
