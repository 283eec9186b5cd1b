package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/httpresp"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// HANDLER — tablero del administrador
// ======================================================

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardSummary struct {
	ActiveServices         int64                `json:"active_services"`
	AvailableProfessionals int64                `json:"available_professionals"`
	Members                int64                `json:"members"`
	TodayAppointments      []models.Appointment `json:"today_appointments"`
}

// Summary responde los números del negocio y los turnos activos de hoy:
// GET /admin/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	negocioID := middleware.NegocioID(c)

	var out DashboardSummary

	if err := h.db.Model(&models.Service{}).
		Where("negocio_id = ? AND is_active = true", negocioID).
		Count(&out.ActiveServices).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "No se pudo armar el tablero.")
		return
	}

	if err := h.db.Model(&models.Professional{}).
		Where("negocio_id = ? AND is_available = true", negocioID).
		Count(&out.AvailableProfessionals).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "No se pudo armar el tablero.")
		return
	}

	if err := h.db.Model(&models.Membership{}).
		Where("negocio_id = ? AND is_active = true", negocioID).
		Count(&out.Members).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "No se pudo armar el tablero.")
		return
	}

	dayStart, dayEnd := domain.DayBounds(time.Now())
	if err := h.db.
		Where("negocio_id = ? AND status IN ? AND start_datetime >= ? AND start_datetime < ?",
			negocioID, domain.ActiveStatuses(), dayStart, dayEnd).
		Order("start_datetime asc").
		Preload("Client").
		Preload("Professional.User").
		Preload("Service").
		Find(&out.TodayAppointments).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "No se pudo armar el tablero.")
		return
	}

	httpresp.OK(c, out)
}
