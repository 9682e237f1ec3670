package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tour-packages-backend/internal/http/middleware"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/services"
)

// InquiryHandlers serves the public submission endpoint and the admin
// inquiry surface. The notifier is built once at startup and injected here.
type InquiryHandlers struct {
	Notifier services.Notifier
}

type inquiryPayload struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone"`
	PackageID     int64  `json:"packageId" binding:"required"`
	Message       string `json:"message" binding:"required"`
	Travelers     int    `json:"travelers"`
	PreferredDate string `json:"preferredDate"`
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (h InquiryHandlers) service(c *gin.Context) services.InquiryService {
	return services.InquiryService{
		InquiryRepo: repositories.InquiryRepository{},
		PackageRepo: repositories.PackageRepository{},
		Notifier:    h.Notifier,
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/inquiries
func (h InquiryHandlers) Create(c *gin.Context) {
	var req inquiryPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	saved, err := h.service(c).Submit(services.SubmitInquiryInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PackageID:     req.PackageID,
		Message:       req.Message,
		Travelers:     req.Travelers,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"inquiry": saved,
	})
}

// GET /api/inquiries?status=&packageId= (admin)
func (h InquiryHandlers) List(c *gin.Context) {
	filter := repositories.InquiryFilter{
		Status: strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("packageId")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.PackageID = id
		}
	}

	inquiries, err := h.service(c).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// GET /api/inquiries/:id (admin)
func (h InquiryHandlers) Get(c *gin.Context) {
	id := ParseIDOrZero(c, "id")
	inq, err := h.service(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, inq)
}

// PUT /api/inquiries/:id/status (admin)
func (h InquiryHandlers) UpdateStatus(c *gin.Context) {
	id := ParseIDOrZero(c, "id")

	var req statusPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	inq, err := h.service(c).UpdateStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, inq)
}

// DELETE /api/inquiries/:id (admin)
func (h InquiryHandlers) Delete(c *gin.Context) {
	id := ParseIDOrZero(c, "id")
	if err := h.service(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}
