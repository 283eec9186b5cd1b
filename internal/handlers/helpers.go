package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
)

// --------------------------------------------------
// Mapeo de errores de negocio a HTTP
// --------------------------------------------------

var businessMessages = map[string]string{
	"negocio_not_found":        "Negocio no encontrado.",
	"professional_not_found":   "Profesional no encontrado.",
	"service_not_found":        "Servicio no encontrado.",
	"appointment_not_found":    "Turno no encontrado.",
	"time_block_not_found":     "Bloqueo no encontrado.",
	"user_not_found":           "Usuario no encontrado.",
	"cross_tenant":             "Los datos no pertenecen al mismo negocio.",
	"professional_unavailable": "El profesional no está disponible.",
	"service_inactive":         "El servicio no está activo.",
	"slot_conflict":            "El horario ya está reservado.",
	"outside_working_hours":    "Fuera del horario de atención.",
	"timeslot_blocked":         "El horario está bloqueado.",
	"already_cancelled":        "El turno ya fue cancelado.",
	"already_completed":        "El turno ya fue completado.",
	"unknown_status":           "El turno tiene un estado desconocido.",
	"too_late_to_cancel":       "Solo se puede cancelar con 2 horas de anticipación.",
	"not_owner":                "El turno pertenece a otro profesional.",
	"invalid_credentials":      "Usuario o contraseña incorrectos.",
	"invalid_role":             "Rol inválido.",
	"invalid_email":            "Correo electrónico inválido.",
	"weak_password":            "La contraseña debe tener al menos 8 caracteres.",
	"username_required":        "El nombre de usuario es obligatorio.",
	"negocio_name_required":    "El nombre del negocio es obligatorio.",
	"registration_failed":      "No se pudo completar el registro.",
	"invalid_day_of_week":      "Día de la semana inválido.",
	"invalid_time_format":      "El horario debe tener formato HH:MM.",
	"invalid_time_range":       "El inicio debe ser anterior al fin.",
	"invalid_date_range":       "Rango de fechas inválido.",
	"overlapping_windows":      "Las ventanas del mismo día no pueden pisarse.",
	"service_name_required":    "El nombre del servicio es obligatorio.",
	"invalid_duration":         "La duración debe ser mayor a cero.",
	"invalid_price":            "El precio no puede ser negativo.",
}

func businessStatus(code string) int {
	switch code {
	case "negocio_not_found", "professional_not_found", "service_not_found",
		"appointment_not_found", "time_block_not_found", "user_not_found":
		return 404
	case "cross_tenant", "not_owner":
		return 403
	case "slot_conflict":
		return 409
	case "invalid_credentials":
		return 401
	default:
		return 400
	}
}

// writeError traduce errores de negocio a la respuesta HTTP estándar.
// Cualquier otro error es un 500 genérico, sin detalles internos.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.AsBusiness(err); ok {
		msg := businessMessages[code]
		if msg == "" {
			msg = "Operación inválida."
		}
		httperr.Write(c, businessStatus(code), code, msg)
		return
	}
	httperr.Internal(c, "internal_error", "Error interno.")
}

// --------------------------------------------------
// Parseo de parámetros
// --------------------------------------------------

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Parámetro "+name+" inválido.")
		return 0, false
	}
	return uint(v), true
}

func queryDate(c *gin.Context, name string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", c.Query(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La fecha debe tener formato YYYY-MM-DD.")
		return time.Time{}, false
	}
	return d, true
}
