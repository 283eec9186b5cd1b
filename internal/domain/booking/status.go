package booking

import "github.com/odremano/OBProyect/internal/httperr"

// ===============================
// Estados del turno
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses son los estados que ocupan agenda:
// un turno cancelado o completado no genera conflictos.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Validaciones de transición
// ===============================

// CanCancel define si un turno puede cancelarse según su estado.
// Cada estado terminal tiene su propio código, nunca un "invalid_state" genérico.
func CanCancel(current Status) error {
	switch current {
	case StatusCancelled:
		return httperr.ErrBusiness("already_cancelled")
	case StatusCompleted:
		return httperr.ErrBusiness("already_completed")
	case StatusPending, StatusConfirmed:
		return nil
	default:
		return httperr.ErrBusiness("unknown_status")
	}
}

// CanComplete define si un turno puede marcarse como completado.
func CanComplete(current Status) error {
	switch current {
	case StatusCompleted:
		return httperr.ErrBusiness("already_completed")
	case StatusCancelled:
		return httperr.ErrBusiness("already_cancelled")
	case StatusPending, StatusConfirmed:
		return nil
	default:
		return httperr.ErrBusiness("unknown_status")
	}
}

// InitialStatus valida la política de estado inicial configurada.
// Un turno jamás nace cancelado ni completado.
func InitialStatus(policy string) Status {
	if policy == string(StatusConfirmed) {
		return StatusConfirmed
	}
	return StatusPending
}
