package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	"github.com/BruksfildServices01/barber-mvp/internal/timeutil"
	"github.com/BruksfildServices01/barber-mvp/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	// Ou um cliente existente...
	ClientID string

	// ...ou um cliente novo, criado junto com o atendimento.
	ClientName  string
	ClientPhone string

	ServiceID string
	BarberID  string
	Price     float64
	Date      string // YYYY-MM-DD
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	store *docstore.Store
	audit *audit.Dispatcher
	tz    string
}

func NewCreate(store *docstore.Store, audit *audit.Dispatcher, tz string) *Create {
	return &Create{store: store, audit: audit, tz: tz}
}

// Execute registra um atendimento. Cliente novo é inserido antes do
// atendimento, e o lastVisitAt dele recebe a data do atendimento — nunca
// retrocedendo se já houver visita mais recente.
func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	if in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	// gravado ao meio-dia, longe das bordas de fuso
	day, err := timeutil.ParseDate(in.Date, timezone.Location(uc.tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	dateAt := timeutil.AtMidday(day)

	var created models.Appointment

	err = uc.store.Update(ctx, func(doc *models.Document) error {
		clientID := in.ClientID

		if clientID == "" {
			// formulário pré-preenchido por um pedido pode bater num
			// cliente já cadastrado: compara telefones só pelos dígitos
			if match := findClientByPhone(doc, in.ClientPhone); match != nil {
				clientID = match.ID
			} else {
				client := models.Client{
					ID:    uuid.NewString(),
					Name:  strings.TrimSpace(in.ClientName),
					Phone: strings.TrimSpace(in.ClientPhone),
				}
				if client.Name == "" {
					return httperr.ErrBusiness("client_name_required")
				}
				doc.Clients = append(doc.Clients, client)
				clientID = client.ID
			}
		} else if doc.FindClient(clientID) == nil {
			return httperr.ErrBusiness("client_not_found")
		}

		barberID := in.BarberID
		if barberID == "" {
			if b := docstore.DefaultBarber(doc); b != nil {
				barberID = b.ID
			}
		}

		created = models.Appointment{
			ID:        uuid.NewString(),
			ClientID:  clientID,
			ServiceID: in.ServiceID,
			BarberID:  barberID,
			Price:     in.Price,
			DateAt:    dateAt,
		}
		doc.Appointments = append(doc.Appointments, created)

		if client := doc.FindClient(clientID); client != nil {
			if client.LastVisitAt == nil || dateAt.After(*client.LastVisitAt) {
				client.LastVisitAt = &dateAt
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: created.ID,
	})

	return &created, nil
}

func findClientByPhone(doc *models.Document, phone string) *models.Client {
	digits := onlyDigits(phone)
	if digits == "" {
		return nil
	}
	for i := range doc.Clients {
		if onlyDigits(doc.Clients[i].Phone) == digits {
			return &doc.Clients[i]
		}
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
