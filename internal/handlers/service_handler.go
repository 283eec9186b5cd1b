package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/usecase/catalog"
)

// ======================================================
// HANDLER — administración de servicios
// ======================================================

type ServiceHandler struct {
	services *catalog.ManageServices
}

func NewServiceHandler(services *catalog.ManageServices) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) List(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	services, err := h.services.List(c.Request.Context(), negocioID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	svc, err := h.services.Create(c.Request.Context(), negocioID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	serviceID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	svc, err := h.services.Update(c.Request.Context(), negocioID, serviceID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Deactivate(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	serviceID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.services.Deactivate(c.Request.Context(), negocioID, serviceID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
