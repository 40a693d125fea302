package docstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

// substituível nos testes
var timeNow = time.Now

// Seed monta o documento inicial: um barbeiro padrão, três serviços e o
// resto vazio, já na versão atual do schema.
func Seed() *models.Document {
	now := timeNow()
	defaultBarberID := uuid.NewString()

	return &models.Document{
		Version:        models.SchemaVersion,
		BarbershopName: "Barbearia Ousadia",
		Services: []models.Service{
			{ID: uuid.NewString(), Name: "Corte", Price: 30},
			{ID: uuid.NewString(), Name: "Barba", Price: 25},
			{ID: uuid.NewString(), Name: "Corte + Barba", Price: 50},
		},
		Clients:      []models.Client{},
		Appointments: []models.Appointment{},
		Barbers: []models.Barber{
			{ID: defaultBarberID, Name: "Barbeiro 1", Phone: "", IsDefault: true},
		},
		DefaultBarberID:    defaultBarberID,
		SchedulingRequests: []models.SchedulingRequest{},
		UI:                 models.UIState{LastSeenRequestAt: nil},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
