package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/usecase/schedule"
)

// ======================================================
// HANDLER — bloqueos de agenda
// ======================================================

type TimeBlockHandler struct {
	blocks *schedule.ManageTimeBlocks
}

func NewTimeBlockHandler(blocks *schedule.ManageTimeBlocks) *TimeBlockHandler {
	return &TimeBlockHandler{blocks: blocks}
}

// List responde los bloqueos vigentes de un profesional:
// GET /professionals/:id/time-blocks
func (h *TimeBlockHandler) List(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	blocks, err := h.blocks.List(c.Request.Context(), negocioID, professionalID, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, blocks)
}

func (h *TimeBlockHandler) Create(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	var req schedule.CreateTimeBlockInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	block, err := h.blocks.Create(c.Request.Context(), negocioID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *TimeBlockHandler) Delete(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	blockID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.blocks.Delete(c.Request.Context(), negocioID, blockID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
