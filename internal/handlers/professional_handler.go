package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/usecase/catalog"
	"github.com/odremano/OBProyect/internal/usecase/membership"
)

// ======================================================
// HANDLER — profesionales y membresías (admin)
// ======================================================

type ProfessionalHandler struct {
	professionals *catalog.ManageProfessionals
	setRole       *membership.SetRole
	listMembers   *membership.ListMembers
}

func NewProfessionalHandler(
	professionals *catalog.ManageProfessionals,
	setRole *membership.SetRole,
	listMembers *membership.ListMembers,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionals: professionals,
		setRole:       setRole,
		listMembers:   listMembers,
	}
}

type SetRoleRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	profs, err := h.professionals.List(c.Request.Context(), negocioID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, profs)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	professionalID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req catalog.ProfessionalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	prof, err := h.professionals.Update(c.Request.Context(), negocioID, professionalID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, prof)
}

// Members lista las membresías del negocio: GET /members
func (h *ProfessionalHandler) Members(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	ms, err := h.listMembers.Execute(c.Request.Context(), negocioID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, ms)
}

// SetRole asigna el rol de un usuario y sincroniza su perfil
// profesional: POST /members/role
func (h *ProfessionalHandler) SetRole(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	m, err := h.setRole.Execute(c.Request.Context(), negocioID, req.UserID, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, m)
}
