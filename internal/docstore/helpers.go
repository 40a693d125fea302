package docstore

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-mvp/internal/domain/request"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
)

// Helpers de mutação: operam sobre o documento em memória; quem chama é
// responsável por persistir depois (em geral via Store.Update).

// SetDefaultBarber limpa isDefault de todos os barbeiros e marca só o de
// id dado, atualizando defaultBarberId. Id inexistente é no-op silencioso.
func SetDefaultBarber(doc *models.Document, barberID string) {
	if doc.FindBarber(barberID) == nil {
		return
	}
	for i := range doc.Barbers {
		doc.Barbers[i].IsDefault = doc.Barbers[i].ID == barberID
	}
	doc.DefaultBarberID = barberID
}

// ReassignAppointmentsBarber reescreve o barberId de todos os
// atendimentos do barbeiro antigo para o novo.
func ReassignAppointmentsBarber(doc *models.Document, oldBarberID, newBarberID string) {
	for i := range doc.Appointments {
		if doc.Appointments[i].BarberID == oldBarberID {
			doc.Appointments[i].BarberID = newBarberID
		}
	}
}

// DefaultBarber retorna o barbeiro marcado como padrão, ou o primeiro da
// lista como reserva. Nil com a lista vazia.
func DefaultBarber(doc *models.Document) *models.Barber {
	for i := range doc.Barbers {
		if doc.Barbers[i].IsDefault {
			return &doc.Barbers[i]
		}
	}
	if len(doc.Barbers) > 0 {
		return &doc.Barbers[0]
	}
	return nil
}

// RequestInput são os campos vindos do formulário público. Presença de
// nome/telefone/data/hora é responsabilidade de quem chama; aqui nada é
// validado.
type RequestInput struct {
	ClientName    string
	ClientPhone   string
	PreferredDate string
	PreferredTime string
	ServiceID     *string
	BarberID      *string
	Notes         string
}

// CreateSchedulingRequest anexa um pedido novo, nascido PENDING, com
// createdAt e updatedAt iguais, e o retorna.
func CreateSchedulingRequest(doc *models.Document, in RequestInput) *models.SchedulingRequest {
	now := timeNow()

	doc.SchedulingRequests = append(doc.SchedulingRequests, models.SchedulingRequest{
		ID:            uuid.NewString(),
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		ServiceID:     in.ServiceID,
		BarberID:      in.BarberID,
		Notes:         in.Notes,
		Status:        string(request.InitialStatus()),
		CreatedAt:     now,
		UpdatedAt:     now,
	})

	return &doc.SchedulingRequests[len(doc.SchedulingRequests)-1]
}

// UpdateRequestStatus sobrescreve o status do pedido e carimba updatedAt.
// Id inexistente retorna nil sem tocar em nada.
func UpdateRequestStatus(doc *models.Document, requestID string, newStatus request.Status) *models.SchedulingRequest {
	req := doc.FindSchedulingRequest(requestID)
	if req == nil {
		return nil
	}
	req.Status = string(newStatus)
	req.UpdatedAt = timeNow()
	return req
}

// UpdateLastSeenRequestAt marca agora como a última visita à caixa de
// entrada — separa "novo desde a última olhada" de "pendente".
func UpdateLastSeenRequestAt(doc *models.Document) {
	now := timeNow()
	doc.UI.LastSeenRequestAt = &now
}

// CountPendingRequests conta pedidos PENDING (badge da navegação).
func CountPendingRequests(doc *models.Document) int {
	count := 0
	for i := range doc.SchedulingRequests {
		if doc.SchedulingRequests[i].Status == string(request.StatusPending) {
			count++
		}
	}
	return count
}

// CountNewRequests conta pedidos PENDING criados depois da última visita
// à caixa de entrada. Sem visita registrada, equivale a
// CountPendingRequests.
func CountNewRequests(doc *models.Document) int {
	lastSeen := doc.UI.LastSeenRequestAt
	if lastSeen == nil {
		return CountPendingRequests(doc)
	}

	count := 0
	for i := range doc.SchedulingRequests {
		r := &doc.SchedulingRequests[i]
		if r.Status == string(request.StatusPending) && r.CreatedAt.After(*lastSeen) {
			count++
		}
	}
	return count
}
