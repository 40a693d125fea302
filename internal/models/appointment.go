package models

import "time"

type Appointment struct {
	ID        string `json:"id"`
	ClientID  string `json:"clientId"`
	ServiceID string `json:"serviceId"`
	BarberID  string `json:"barberId"`

	// Price é capturado na criação; mudanças posteriores no preço do
	// serviço não afetam atendimentos já registrados.
	Price float64 `json:"price"`

	DateAt time.Time `json:"dateAt"`
}
