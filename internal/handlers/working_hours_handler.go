package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/usecase/schedule"
)

// ======================================================
// HANDLER — horarios semanales
// ======================================================

type WorkingHoursHandler struct {
	hours *schedule.ManageWorkingHours
}

func NewWorkingHoursHandler(hours *schedule.ManageWorkingHours) *WorkingHoursHandler {
	return &WorkingHoursHandler{hours: hours}
}

type ReplaceWorkingHoursRequest struct {
	Windows []schedule.WorkingHoursInput `json:"windows"`
}

// Get responde la semana completa: GET /professionals/:id/working-hours
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	hours, err := h.hours.Get(c.Request.Context(), negocioID, professionalID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, hours)
}

// Replace reemplaza la semana completa: PUT /professionals/:id/working-hours
func (h *WorkingHoursHandler) Replace(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req ReplaceWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	hours, err := h.hours.Replace(c.Request.Context(), negocioID, professionalID, req.Windows)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, hours)
}
