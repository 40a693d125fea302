package request

import "github.com/BruksfildServices01/barber-mvp/internal/httperr"

// ===============================
// Scheduling Request Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSeen      Status = "SEEN"
	StatusDone      Status = "DONE"
	StatusDismissed Status = "DISMISSED"
)

// ===============================
// Validations
// ===============================

// IsValid diz se o status é um dos quatro conhecidos.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusSeen, StatusDone, StatusDismissed:
		return true
	}
	return false
}

// CanTransition valida uma mudança de status. O grafo é totalmente
// conectado: DONE e DISMISSED voltam para PENDING ("reativar"), então
// nenhum estado é terminal de verdade. PENDING só é especial por ser o
// único status de nascimento (ver InitialStatus).
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// InitialStatus é o único status atribuível na criação.
func InitialStatus() Status {
	return StatusPending
}

// IsActive agrupa os status que aparecem na aba "Ativos" da caixa de
// entrada (pendentes e já vistos, ainda sem desfecho).
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusSeen
}
