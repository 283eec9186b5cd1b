package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/usecase/catalog"
	"github.com/odremano/OBProyect/internal/usecase/identity"
)

// ======================================================
// HANDLER — cuentas y sesión
// ======================================================

type AuthHandler struct {
	auth    *identity.Auth
	catalog *catalog.PublicCatalog
}

func NewAuthHandler(auth *identity.Auth, cat *catalog.PublicCatalog) *AuthHandler {
	return &AuthHandler{auth: auth, catalog: cat}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// RegisterNegocio da de alta un negocio con su administrador:
// POST /auth/register-negocio
func (h *AuthHandler) RegisterNegocio(c *gin.Context) {
	var req identity.RegisterNegocioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	session, err := h.auth.RegisterNegocio(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// RegisterClient da de alta un cliente en el negocio del slug:
// POST /public/:slug/register
func (h *AuthHandler) RegisterClient(c *gin.Context) {
	slug := c.Param("slug")

	negocio, err := h.catalog.Negocio(c.Request.Context(), slug)
	if err != nil {
		writeError(c, err)
		return
	}

	var req identity.RegisterClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	session, err := h.auth.RegisterClient(c.Request.Context(), negocio.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, session)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.UserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
