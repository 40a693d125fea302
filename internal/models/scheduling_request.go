package models

import "time"

// SchedulingRequest é um pedido de agendamento enviado pelo cliente na
// página pública, distinto de um Appointment confirmado.
type SchedulingRequest struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	PreferredDate string `json:"preferredDate"` // YYYY-MM-DD
	PreferredTime string `json:"preferredTime"` // HH:mm

	ServiceID *string `json:"serviceId"`
	BarberID  *string `json:"barberId"`

	Notes  string `json:"notes"`
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
