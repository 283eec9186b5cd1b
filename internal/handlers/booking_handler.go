package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/metrics"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/models"
	"github.com/odremano/OBProyect/internal/payments"
	"github.com/odremano/OBProyect/internal/usecase/booking"
)

// ======================================================
// HANDLER — reservas del cliente
// ======================================================

type BookingHandler struct {
	slots      *booking.GenerateSlots
	days       *booking.AvailableDays
	create     *booking.CreateAppointment
	cancel     *booking.CancelAppointment
	myBookings *booking.MyBookings
	repo       domain.Repository
	payments   *payments.Provider
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

func NewBookingHandler(
	slots *booking.GenerateSlots,
	days *booking.AvailableDays,
	create *booking.CreateAppointment,
	cancel *booking.CancelAppointment,
	myBookings *booking.MyBookings,
	repo domain.Repository,
	provider *payments.Provider,
	m *metrics.Metrics,
	log zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		slots:      slots,
		days:       days,
		create:     create,
		cancel:     cancel,
		myBookings: myBookings,
		repo:       repo,
		payments:   provider,
		metrics:    m,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type BookingCreatedResponse struct {
	Appointment *models.Appointment `json:"appointment"`
	PaymentURL  string              `json:"payment_url,omitempty"`
}

// ======================================================
// DISPONIBILIDAD
// ======================================================

// Availability responde los slots libres de un profesional para un
// servicio y una fecha: GET /bookings/availability?professional_id=&service_id=&date=
func (h *BookingHandler) Availability(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := queryUint(c, "professional_id")
	if !ok {
		return
	}
	serviceID, ok := queryUint(c, "service_id")
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}

	h.metrics.SlotQueries.Inc()

	slots, err := h.slots.Execute(c.Request.Context(), domain.AvailabilityInput{
		NegocioID:      negocioID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// AvailableDays responde los días con al menos un hueco en el mes:
// GET /bookings/available-days?professional_id=&service_id=&year=&month=
func (h *BookingHandler) AvailableDays(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := queryUint(c, "professional_id")
	if !ok {
		return
	}
	serviceID, ok := queryUint(c, "service_id")
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

	days, err := h.days.Execute(
		c.Request.Context(),
		negocioID, professionalID, serviceID,
		int(year), int(month),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, days)
}

// ======================================================
// CREAR
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	negocioID := middleware.NegocioID(c)
	clientID := middleware.UserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), domain.CreateInput{
		NegocioID:      negocioID,
		ClientID:       clientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		StartDatetime:  start,
		Notes:          req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			h.metrics.BookingConflicts.Inc()
		}
		writeError(c, err)
		return
	}

	h.metrics.BookingsCreated.Inc()

	resp := BookingCreatedResponse{Appointment: ap}

	// El link de pago es mejor-esfuerzo: si falla, el turno queda
	// creado igual y se loguea el problema.
	if h.payments != nil {
		if svc, err := h.repo.GetService(c.Request.Context(), negocioID, ap.ServiceID); err == nil {
			url, err := h.payments.CheckoutLink(c.Request.Context(), ap, svc)
			if err != nil {
				h.log.Warn().Err(err).Str("reference", ap.Reference).Msg("no se pudo generar el link de pago")
			} else {
				resp.PaymentURL = url
			}
		}
	}

	c.JSON(201, resp)
}

// ======================================================
// MIS TURNOS
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	negocioID := middleware.NegocioID(c)
	clientID := middleware.UserID(c)

	out, err := h.myBookings.Execute(c.Request.Context(), negocioID, clientID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CANCELAR
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	negocioID := middleware.NegocioID(c)
	clientID := middleware.UserID(c)

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.ByClient(c.Request.Context(), negocioID, clientID, appointmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.metrics.BookingsCancelled.Inc()
	httpresp.OK(c, ap)
}
