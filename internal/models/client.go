package models

import "time"

// Cliente simples, sem login
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// LastVisitAt só é escrito pela criação de atendimento; nunca retrocede.
	LastVisitAt *time.Time `json:"lastVisitAt"`
}
