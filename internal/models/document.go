package models

import "time"

// SchemaVersion é a versão atual do documento persistido.
// Migrações só adicionam campos; nunca removem dados.
const SchemaVersion = 3

// Document é o agregado único que guarda todos os dados da aplicação.
// Leitura e escrita são sempre do documento inteiro.
type Document struct {
	Version        int    `json:"version"`
	BarbershopName string `json:"barbershopName"`

	Services     []Service     `json:"services"`
	Clients      []Client      `json:"clients"`
	Barbers      []Barber      `json:"barbers"`
	Appointments []Appointment `json:"appointments"`

	DefaultBarberID string `json:"defaultBarberId"`

	SchedulingRequests []SchedulingRequest `json:"schedulingRequests"`

	UI UIState `json:"ui"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UIState struct {
	LastSeenRequestAt *time.Time `json:"lastSeenRequestAt"`
}

// FindService busca um serviço pelo id. Retorna nil se não existir
// (referências penduradas são aceitas — ver remoção de serviço).
func (d *Document) FindService(id string) *Service {
	for i := range d.Services {
		if d.Services[i].ID == id {
			return &d.Services[i]
		}
	}
	return nil
}

func (d *Document) FindClient(id string) *Client {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

func (d *Document) FindBarber(id string) *Barber {
	for i := range d.Barbers {
		if d.Barbers[i].ID == id {
			return &d.Barbers[i]
		}
	}
	return nil
}

func (d *Document) FindSchedulingRequest(id string) *SchedulingRequest {
	for i := range d.SchedulingRequests {
		if d.SchedulingRequests[i].ID == id {
			return &d.SchedulingRequests[i]
		}
	}
	return nil
}
