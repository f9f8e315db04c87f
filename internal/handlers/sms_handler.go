package handlers

import (
	"net/http"

	"agrismart/internal/models"
	"agrismart/internal/services"
	"agrismart/internal/utils"

	"github.com/gin-gonic/gin"
)

type SMSHandler struct {
	smsService   *services.SMSService
	alertService *services.AlertService
}

func NewSMSHandler(smsService *services.SMSService, alertService *services.AlertService) *SMSHandler {
	return &SMSHandler{
		smsService:   smsService,
		alertService: alertService,
	}
}

type sendRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// SendSMS sends a single raw message
func (h *SMSHandler) SendSMS(c *gin.Context) {
	var request sendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result := h.smsService.SendSMS(c.Request.Context(), request.PhoneNumber, request.Message)
	utils.SuccessResponse(c, "SMS processed", result)
}

type templateRequest struct {
	PhoneNumber string            `json:"phone_number" binding:"required"`
	TemplateKey string            `json:"template_key" binding:"required"`
	Variables   map[string]string `json:"variables"`
	Language    string            `json:"language"`
}

// SendFromTemplate renders a catalog template and sends it
func (h *SMSHandler) SendFromTemplate(c *gin.Context) {
	var request templateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result := h.smsService.SendFromTemplate(c.Request.Context(),
		request.PhoneNumber, request.TemplateKey, request.Variables, request.Language)
	utils.SuccessResponse(c, "SMS processed", result)
}

type bulkRequest struct {
	Recipients []models.Recipient `json:"recipients" binding:"required"`
	Prioritize bool               `json:"prioritize"`
}

// SendBulk dispatches a batch of recipients
func (h *SMSHandler) SendBulk(c *gin.Context) {
	var request bulkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	report := h.smsService.SendBulk(c.Request.Context(), request.Recipients,
		services.BulkOptions{Prioritize: request.Prioritize})
	utils.SuccessResponse(c, "Bulk send completed", report)
}

type otpRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Language    string `json:"language"`
}

// SendOTP generates a one-time code and delivers it by SMS
func (h *SMSHandler) SendOTP(c *gin.Context) {
	var request otpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	code := utils.GenerateOTP()
	result := h.alertService.SendOtp(c.Request.Context(), request.PhoneNumber, code, request.Language)
	if !result.Success {
		utils.ErrorResponse(c, http.StatusBadGateway, "OTP_SEND_FAILED", result.Error)
		return
	}

	utils.SuccessResponse(c, "OTP sent", gin.H{
		"message_id": result.MessageID,
		"provider":   result.Provider,
		"expires_in": utils.OTPExpiry.String(),
	})
}

type weatherAlertRequest struct {
	Farmers []models.Farmer         `json:"farmers" binding:"required"`
	Alert   models.WeatherAlertData `json:"alert" binding:"required"`
}

// SendWeatherAlert broadcasts a weather warning to farmers
func (h *SMSHandler) SendWeatherAlert(c *gin.Context) {
	var request weatherAlertRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	report := h.alertService.SendWeatherAlert(c.Request.Context(), request.Farmers, request.Alert)
	utils.SuccessResponse(c, "Weather alert dispatched", report)
}

// GetTemplates lists available template keys
func (h *SMSHandler) GetTemplates(c *gin.Context) {
	utils.SuccessResponse(c, "Available templates", gin.H{
		"templates": h.smsService.Templates(),
	})
}

// GetLanguages lists supported language codes
func (h *SMSHandler) GetLanguages(c *gin.Context) {
	utils.SuccessResponse(c, "Supported languages", gin.H{
		"languages": h.smsService.SupportedLanguages(),
	})
}

// GetBalance reports remaining credit at the active provider
func (h *SMSHandler) GetBalance(c *gin.Context) {
	balance := h.smsService.Balance(c.Request.Context())
	utils.SuccessResponse(c, "Provider balance", balance)
}
