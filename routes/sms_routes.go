package routes

import (
	"agrismart/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSMSRoutes sets up routes for the SMS dispatch core
func SetupSMSRoutes(r *gin.RouterGroup, smsHandler *handlers.SMSHandler) {
	sms := r.Group("/sms")
	{
		sms.POST("/send", smsHandler.SendSMS)
		sms.POST("/send-template", smsHandler.SendFromTemplate)
		sms.POST("/bulk", smsHandler.SendBulk)
		sms.POST("/otp", smsHandler.SendOTP)

		sms.GET("/templates", smsHandler.GetTemplates)
		sms.GET("/languages", smsHandler.GetLanguages)
		sms.GET("/balance", smsHandler.GetBalance)
	}

	alerts := r.Group("/alerts")
	{
		alerts.POST("/weather", smsHandler.SendWeatherAlert)
	}
}
