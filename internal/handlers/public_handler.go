package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/metrics"
	"github.com/odremano/OBProyect/internal/usecase/booking"
	"github.com/odremano/OBProyect/internal/usecase/catalog"
)

// ======================================================
// HANDLER — catálogo público (sin autenticación)
// ======================================================

type PublicHandler struct {
	catalog *catalog.PublicCatalog
	slots   *booking.GenerateSlots
	metrics *metrics.Metrics
}

func NewPublicHandler(
	cat *catalog.PublicCatalog,
	slots *booking.GenerateSlots,
	m *metrics.Metrics,
) *PublicHandler {
	return &PublicHandler{catalog: cat, slots: slots, metrics: m}
}

// Summary responde la carta de presentación del negocio:
// GET /public/:slug
func (h *PublicHandler) Summary(c *gin.Context) {
	slug := c.Param("slug")

	summary, err := h.catalog.Summary(c.Request.Context(), slug)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, summary)
}

// Services responde los servicios activos: GET /public/:slug/services
func (h *PublicHandler) Services(c *gin.Context) {
	negocio, err := h.catalog.Negocio(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	services, err := h.catalog.Services(c.Request.Context(), negocio.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, services)
}

// Professionals responde los profesionales disponibles:
// GET /public/:slug/professionals
func (h *PublicHandler) Professionals(c *gin.Context) {
	negocio, err := h.catalog.Negocio(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	profs, err := h.catalog.Professionals(c.Request.Context(), negocio.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, profs)
}

// Availability expone la consulta de slots sin autenticación, para que
// el cliente vea horarios antes de registrarse:
// GET /public/:slug/availability?professional_id=&service_id=&date=
func (h *PublicHandler) Availability(c *gin.Context) {
	negocio, err := h.catalog.Negocio(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

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
		NegocioID:      negocio.ID,
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
