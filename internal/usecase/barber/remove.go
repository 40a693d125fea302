package barber

import (
	"context"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

type Remove struct {
	store *docstore.Store
	audit *audit.Dispatcher
}

func NewRemove(store *docstore.Store, audit *audit.Dispatcher) *Remove {
	return &Remove{store: store, audit: audit}
}

// Execute remove um barbeiro. Remover o último é rejeitado. Se o removido
// era o padrão, o primeiro restante é promovido e herda os atendimentos
// do removido antes da exclusão.
func (uc *Remove) Execute(ctx context.Context, barberID string) error {
	err := uc.store.Update(ctx, func(doc *models.Document) error {
		barber := doc.FindBarber(barberID)
		if barber == nil {
			return httperr.ErrBusiness("barber_not_found")
		}

		if len(doc.Barbers) == 1 {
			return httperr.ErrBusiness("last_barber")
		}

		newDefaultID := doc.DefaultBarberID
		if barber.IsDefault {
			for i := range doc.Barbers {
				if doc.Barbers[i].ID != barberID {
					newDefaultID = doc.Barbers[i].ID
					break
				}
			}
			docstore.SetDefaultBarber(doc, newDefaultID)
		}

		docstore.ReassignAppointmentsBarber(doc, barberID, newDefaultID)

		remaining := doc.Barbers[:0]
		for i := range doc.Barbers {
			if doc.Barbers[i].ID != barberID {
				remaining = append(remaining, doc.Barbers[i])
			}
		}
		doc.Barbers = remaining
		return nil
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "barber_removed",
		Entity:   "barber",
		EntityID: barberID,
	})
	return nil
}
