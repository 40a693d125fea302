package docstore

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

// Migrate leva um documento de versões antigas para a forma atual.
// Só adiciona o que falta; nunca remove dados. Idempotente: rodar sobre
// um documento já migrado retorna false sem alterar nada.
func Migrate(doc *models.Document) bool {
	migrated := false

	// v1 não tinha barbeiros: semeia um padrão e carimba os atendimentos
	// existentes com ele.
	if doc.Barbers == nil {
		defaultBarberID := uuid.NewString()
		doc.Barbers = []models.Barber{
			{ID: defaultBarberID, Name: "Barbeiro 1", Phone: "", IsDefault: true},
		}
		doc.DefaultBarberID = defaultBarberID
		migrated = true

		for i := range doc.Appointments {
			if doc.Appointments[i].BarberID == "" {
				doc.Appointments[i].BarberID = defaultBarberID
			}
		}
	}

	// defaultBarberId ausente: elege o marcado como padrão, senão o primeiro.
	if doc.DefaultBarberID == "" && len(doc.Barbers) > 0 {
		elected := &doc.Barbers[0]
		for i := range doc.Barbers {
			if doc.Barbers[i].IsDefault {
				elected = &doc.Barbers[i]
				break
			}
		}
		doc.DefaultBarberID = elected.ID
		elected.IsDefault = true
		migrated = true
	}

	// garante que pelo menos um barbeiro está marcado como padrão
	if len(doc.Barbers) > 0 {
		hasDefault := false
		for i := range doc.Barbers {
			if doc.Barbers[i].IsDefault {
				hasDefault = true
				break
			}
		}
		if !hasDefault {
			doc.Barbers[0].IsDefault = true
			doc.DefaultBarberID = doc.Barbers[0].ID
			migrated = true
		}
	}

	// v2 não tinha pedidos de agendamento
	if doc.SchedulingRequests == nil {
		doc.SchedulingRequests = []models.SchedulingRequest{}
		migrated = true
	}

	if doc.Version < models.SchemaVersion {
		doc.Version = models.SchemaVersion
		migrated = true
	}

	return migrated
}
