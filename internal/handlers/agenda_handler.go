package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/metrics"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/models"
	"github.com/odremano/OBProyect/internal/usecase/booking"
	"github.com/odremano/OBProyect/internal/usecase/catalog"
	"gorm.io/gorm"
)

// ======================================================
// HANDLER — agenda del profesional
// ======================================================

// AgendaHandler resuelve el perfil profesional del usuario autenticado
// y expone su agenda. Un usuario sin perfil en el negocio no tiene agenda.
type AgendaHandler struct {
	db            *gorm.DB
	agenda        *booking.Agenda
	cancel        *booking.CancelAppointment
	complete      *booking.CompleteAppointment
	professionals *catalog.ManageProfessionals
	metrics       *metrics.Metrics
}

func NewAgendaHandler(
	db *gorm.DB,
	agenda *booking.Agenda,
	cancel *booking.CancelAppointment,
	complete *booking.CompleteAppointment,
	professionals *catalog.ManageProfessionals,
	m *metrics.Metrics,
) *AgendaHandler {
	return &AgendaHandler{
		db:            db,
		agenda:        agenda,
		cancel:        cancel,
		complete:      complete,
		professionals: professionals,
		metrics:       m,
	}
}

func (h *AgendaHandler) professionalID(c *gin.Context) (uint, bool) {
	negocioID := middleware.NegocioID(c)
	userID := middleware.UserID(c)

	var prof models.Professional
	if err := h.db.
		Where("negocio_id = ? AND user_id = ?", negocioID, userID).
		First(&prof).Error; err != nil {
		httperr.Forbidden(c, "not_a_professional", "El usuario no tiene perfil profesional.")
		return 0, false
	}
	return prof.ID, true
}

// ForDate responde la agenda de un día: GET /agenda?date=YYYY-MM-DD
func (h *AgendaHandler) ForDate(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := h.professionalID(c)
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}

	views, err := h.agenda.ForDate(c.Request.Context(), negocioID, professionalID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, views)
}

// Days responde los días del mes con turnos: GET /agenda/days?year=&month=
func (h *AgendaHandler) Days(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := h.professionalID(c)
	if !ok {
		return
	}
	year, ok := queryUint(c, "year")
	if !ok {
		return
	}
	month, ok := queryUint(c, "month")
	if !ok {
		return
	}
	if month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	days, err := h.agenda.DaysWithAppointments(
		c.Request.Context(),
		negocioID, professionalID,
		int(year), time.Month(month),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, days)
}

func (h *AgendaHandler) Cancel(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := h.professionalID(c)
	if !ok {
		return
	}
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.ByProfessional(c.Request.Context(), negocioID, professionalID, appointmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.metrics.BookingsCancelled.Inc()
	httpresp.OK(c, ap)
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability permite al profesional prender o apagar su propia
// disponibilidad: PATCH /agenda/availability
func (h *AgendaHandler) SetAvailability(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := h.professionalID(c)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	prof, err := h.professionals.SetAvailability(c.Request.Context(), negocioID, professionalID, *req.IsAvailable)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, prof)
}

func (h *AgendaHandler) Complete(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := h.professionalID(c)
	if !ok {
		return
	}
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), negocioID, professionalID, appointmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.metrics.BookingsCompleted.Inc()
	httpresp.OK(c, ap)
}
