package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/httpresp"
	"github.com/chimeco/agenda-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PersonHandler struct {
	db *gorm.DB
}

func NewPersonHandler(db *gorm.DB) *PersonHandler {
	return &PersonHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Company     string `json:"company"`
	Notes       string `json:"notes"`
	Preferences string `json:"preferences"`
	IsWhatsapp  bool   `json:"is_whatsapp"`
	Active      *bool  `json:"active"`
}

type StaffRequest struct {
	Name          string   `json:"name" binding:"required"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Role          string   `json:"role"`
	Specialty     string   `json:"specialty"`
	Services      string   `json:"services"`
	AvailableDays []string `json:"available_days"`
	AllowMultiple *bool    `json:"allow_multiple"`
	IsWhatsapp    bool     `json:"is_whatsapp"`
	Active        *bool    `json:"active"`
}

// ======================================================
// CLIENTS
// ======================================================

func (h *PersonHandler) ListClients(c *gin.Context) {
	query := h.db.Model(&models.Client{}).Order("name ASC")

	// busca por nome, telefone ou email
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *PersonHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client := models.Client{
		Person: models.Person{
			Name:        req.Name,
			Phone:       req.Phone,
			Email:       req.Email,
			Notes:       req.Notes,
			Preferences: req.Preferences,
			Active:      true,
		},
		Company:    req.Company,
		IsWhatsapp: req.IsWhatsapp,
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client)
}

func (h *PersonHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = req.Email
	client.Notes = req.Notes
	client.Preferences = req.Preferences
	client.Company = req.Company
	client.IsWhatsapp = req.IsWhatsapp
	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// STAFF
// ======================================================

func (h *PersonHandler) ListStaff(c *gin.Context) {
	query := h.db.Model(&models.Staff{}).Order("name ASC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"name ILIKE ? OR specialty ILIKE ? OR role ILIKE ?",
			like, like, like,
		)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, staff)
}

func (h *PersonHandler) CreateStaff(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staff := models.Staff{
		Person: models.Person{
			Name:          req.Name,
			Phone:         req.Phone,
			Email:         req.Email,
			Services:      req.Services,
			AvailableDays: req.AvailableDays,
			Active:        true,
		},
		Role:          req.Role,
		Specialty:     req.Specialty,
		AllowMultiple: true,
		IsWhatsapp:    req.IsWhatsapp,
	}
	if req.AllowMultiple != nil {
		staff.AllowMultiple = *req.AllowMultiple
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Erro ao criar profissional.")
		return
	}

	httpresp.Created(c, staff)
}

func (h *PersonHandler) UpdateStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, uint(id)).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staff.Name = req.Name
	staff.Phone = req.Phone
	staff.Email = req.Email
	staff.Services = req.Services
	staff.AvailableDays = req.AvailableDays
	staff.Role = req.Role
	staff.Specialty = req.Specialty
	staff.IsWhatsapp = req.IsWhatsapp
	if req.AllowMultiple != nil {
		staff.AllowMultiple = *req.AllowMultiple
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Erro ao atualizar profissional.")
		return
	}

	httpresp.OK(c, staff)
}
