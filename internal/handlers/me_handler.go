package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/media"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/models"
	"github.com/odremano/OBProyect/internal/usecase/catalog"
)

// maxPhotoUploadBytes limita el tamaño del archivo recibido.
const maxPhotoUploadBytes = 5 << 20

// ======================================================
// HANDLER — perfil del usuario autenticado
// ======================================================

type MeHandler struct {
	db            *gorm.DB
	professionals *catalog.ManageProfessionals
	storage       *media.Storage
}

func NewMeHandler(
	db *gorm.DB,
	professionals *catalog.ManageProfessionals,
	storage *media.Storage,
) *MeHandler {
	return &MeHandler{db: db, professionals: professionals, storage: storage}
}

type UpdateMeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone_number"`
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "update_failed", "No se pudo actualizar el perfil.")
		return
	}

	httpresp.OK(c, user)
}

// UploadPhoto procesa y sube la foto de perfil del profesional
// autenticado: POST /me/photo (multipart, campo "photo").
func (h *MeHandler) UploadPhoto(c *gin.Context) {
	negocioID := middleware.NegocioID(c)
	userID := middleware.UserID(c)

	if h.storage == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "media_disabled", "La carga de fotos no está habilitada.")
		return
	}

	var prof models.Professional
	if err := h.db.
		Where("negocio_id = ? AND user_id = ?", negocioID, userID).
		First(&prof).Error; err != nil {
		httperr.Forbidden(c, "not_a_professional", "El usuario no tiene perfil profesional.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Falta el archivo de la foto.")
		return
	}
	if file.Size > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "La foto no puede superar los 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "photo_read_error", "No se pudo leer la foto.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "photo_read_error", "No se pudo leer la foto.")
		return
	}

	processed, err := media.ProcessPhoto(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "La foto debe ser JPEG o PNG.")
		return
	}

	key := fmt.Sprintf("profiles/%d/%s.webp", negocioID, uuid.NewString())
	url, err := h.storage.Upload(c.Request.Context(), key, "image/webp", processed)
	if err != nil {
		httperr.Internal(c, "photo_upload_error", "No se pudo subir la foto.")
		return
	}

	updated, err := h.professionals.SetPhoto(c.Request.Context(), negocioID, prof.ID, url)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, updated)
}
