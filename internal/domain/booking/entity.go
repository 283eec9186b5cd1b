package booking

import (
	"time"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

// Cancel transiciona el turno a cancelado.
// Regla de anticipación: faltando menos de CancelNotice ya no se cancela,
// sea el cliente o el profesional quien lo pida.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if ap.StartDatetime.Sub(now) < CancelNotice {
		return httperr.ErrBusiness("too_late_to_cancel")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete transiciona el turno a completado. No exige anticipación:
// el profesional puede cerrarlo en cualquier momento.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// CanClientCancel es el cálculo de solo-lectura que acompaña a los
// listados ("¿muestro el botón cancelar?"). No muta nada.
func CanClientCancel(ap *models.Appointment, now time.Time) bool {
	if !IsActive(Status(ap.Status)) {
		return false
	}
	return ap.StartDatetime.Sub(now) >= CancelNotice
}
