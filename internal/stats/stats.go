package stats

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-mvp/internal/format"
	"github.com/BruksfildServices01/barber-mvp/internal/models"
	"github.com/BruksfildServices01/barber-mvp/internal/timeutil"
)

// InactiveAfterDays é o limiar de inatividade: sem visita há 15+ dias
// (ou nunca) o cliente entra na lista de reativação.
const InactiveAfterDays = 15

type BarberRevenue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	IsDefault bool    `json:"isDefault"`
	Revenue   float64 `json:"revenue"`
	Count     int     `json:"count"`

	RevenueLabel string `json:"revenueLabel"`
}

type InactiveClient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// DaysSince nil = nunca visitou
	DaysSince *int   `json:"daysSince"`
	Label     string `json:"label"`
}

type Stats struct {
	ClientsServed   int              `json:"clientsServed"`
	Revenue         float64          `json:"revenue"`
	RevenueLabel    string           `json:"revenueLabel"`
	RevenueByBarber []BarberRevenue  `json:"revenueByBarber"`
	InactiveClients []InactiveClient `json:"inactiveClients"`
}

// Compute deriva as estatísticas do dashboard. Atendimentos são filtrados
// pelo período; a lista de inativos NÃO é — ela é sempre relativa a now,
// independente do recorte escolhido.
func Compute(doc *models.Document, p Period, now time.Time) Stats {
	filtered := FilterAppointmentsByRange(doc.Appointments, p)

	uniqueClients := make(map[string]struct{})
	revenue := 0.0
	for i := range filtered {
		uniqueClients[filtered[i].ClientID] = struct{}{}
		revenue += filtered[i].Price
	}

	return Stats{
		ClientsServed:   len(uniqueClients),
		Revenue:         revenue,
		RevenueLabel:    format.MoneyBRL(revenue),
		RevenueByBarber: revenueByBarber(doc, filtered),
		InactiveClients: inactiveClients(doc.Clients, now),
	}
}

// FilterAppointmentsByRange corta os atendimentos cujo dateAt cai dentro
// do período (inclusivo nas duas pontas).
func FilterAppointmentsByRange(appointments []models.Appointment, p Period) []models.Appointment {
	start, end := p.Bounds()

	var out []models.Appointment
	for i := range appointments {
		if timeutil.IsBetweenInclusive(appointments[i].DateAt, start, end) {
			out = append(out, appointments[i])
		}
	}
	return out
}

// revenueByBarber agrega {faturamento, atendimentos} por barbeiro dentro
// do período, só com quem faturou algo, ordenado por faturamento
// decrescente. Empate preserva a ordem da lista de barbeiros.
func revenueByBarber(doc *models.Document, filtered []models.Appointment) []BarberRevenue {
	type agg struct {
		revenue float64
		count   int
	}
	byBarber := make(map[string]agg)
	for i := range filtered {
		if id := filtered[i].BarberID; id != "" {
			a := byBarber[id]
			a.revenue += filtered[i].Price
			a.count++
			byBarber[id] = a
		}
	}

	var out []BarberRevenue
	for i := range doc.Barbers {
		b := &doc.Barbers[i]
		a := byBarber[b.ID]
		if a.revenue <= 0 {
			continue
		}
		out = append(out, BarberRevenue{
			ID:           b.ID,
			Name:         b.Name,
			IsDefault:    b.IsDefault,
			Revenue:      a.revenue,
			Count:        a.count,
			RevenueLabel: format.MoneyBRL(a.revenue),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}

// inactiveClients lista quem nunca visitou ou está há 15+ dias sem
// visita. Nunca-visitou vem primeiro (tratado como o mais antigo), depois
// os demais por dias-sem-visita decrescente.
func inactiveClients(clients []models.Client, now time.Time) []InactiveClient {
	var out []InactiveClient
	for i := range clients {
		c := &clients[i]

		if c.LastVisitAt == nil {
			out = append(out, InactiveClient{
				ID: c.ID, Name: c.Name, Phone: c.Phone,
				DaysSince: nil,
				Label:     "Nunca visitou",
			})
			continue
		}

		days := timeutil.DaysBetween(*c.LastVisitAt, now)
		if days < InactiveAfterDays {
			continue
		}
		d := days
		out = append(out, InactiveClient{
			ID: c.ID, Name: c.Name, Phone: c.Phone,
			DaysSince: &d,
			Label:     format.DaysLabel(days),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DaysSince, out[j].DaysSince
		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return true
		}
		if b == nil {
			return false
		}
		return *a > *b
	})
	return out
}
