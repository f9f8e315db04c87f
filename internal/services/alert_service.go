package services

import (
	"context"
	"strconv"

	"agrismart/internal/models"
)

// AlertService maps domain events to SMS templates and hands them to the
// dispatcher. It carries no logic beyond field mapping.
type AlertService struct {
	sms *SMSService
}

func NewAlertService(smsService *SMSService) *AlertService {
	return &AlertService{sms: smsService}
}

// SendWeatherAlert broadcasts a weather warning to a list of farmers,
// highest priority first.
func (a *AlertService) SendWeatherAlert(ctx context.Context, farmers []models.Farmer, alert models.WeatherAlertData) *models.BulkReport {
	parcel := alert.ParcelName
	if parcel == "" {
		parcel = "votre parcelle"
	}

	recipients := make([]models.Recipient, len(farmers))
	for i, farmer := range farmers {
		recipients[i] = models.Recipient{
			PhoneNumber: farmer.Phone,
			TemplateKey: "weather_alert",
			Variables: map[string]string{
				"message":  alert.Message,
				"parcelle": parcel,
			},
			Language: farmer.PreferredLanguage,
			Priority: models.PriorityCritical,
		}
	}

	return a.sms.SendBulk(ctx, recipients, BulkOptions{Prioritize: true})
}

func (a *AlertService) SendDiseaseAlert(ctx context.Context, farmer models.Farmer, data models.DiseaseAlertData) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, farmer.Phone, "disease_alert", map[string]string{
		"disease":   data.Name,
		"parcelle":  data.ParcelName,
		"treatment": data.Treatment,
	}, farmer.PreferredLanguage)
}

func (a *AlertService) SendSensorAlert(ctx context.Context, farmer models.Farmer, data models.SensorAlertData) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, farmer.Phone, "sensor_alert", map[string]string{
		"sensor":    data.SensorName,
		"parcelle":  data.ParcelName,
		"parameter": data.Parameter,
		"value":     data.Value,
		"unit":      data.Unit,
		"threshold": data.Threshold,
	}, farmer.PreferredLanguage)
}

func (a *AlertService) SendHarvestReminder(ctx context.Context, farmer models.Farmer, data models.HarvestReminderData) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, farmer.Phone, "harvest_reminder", map[string]string{
		"culture":  data.Crop,
		"parcelle": data.ParcelName,
		"days":     strconv.Itoa(data.DaysUntilHarvest),
	}, farmer.PreferredLanguage)
}

func (a *AlertService) SendMarketPriceAlert(ctx context.Context, farmer models.Farmer, data models.MarketPriceData) *models.SendResult {
	unit := data.Unit
	if unit == "" {
		unit = "kg"
	}
	return a.sms.SendFromTemplate(ctx, farmer.Phone, "market_price", map[string]string{
		"product": data.Product,
		"price":   data.Price,
		"unit":    unit,
		"market":  data.Market,
	}, farmer.PreferredLanguage)
}

func (a *AlertService) SendIrrigationAlert(ctx context.Context, farmer models.Farmer, data models.IrrigationAlertData) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, farmer.Phone, "irrigation_alert", map[string]string{
		"parcelle": data.ParcelName,
		"humidity": data.Humidity,
	}, farmer.PreferredLanguage)
}

func (a *AlertService) SendTrainingReminder(ctx context.Context, farmer models.Farmer, data models.TrainingReminderData) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, farmer.Phone, "training_reminder", map[string]string{
		"title":    data.Title,
		"time":     data.Time,
		"location": data.Location,
	}, farmer.PreferredLanguage)
}

// SendOtp delivers a one-time verification code.
func (a *AlertService) SendOtp(ctx context.Context, phoneNumber, code, language string) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, phoneNumber, "otp", map[string]string{"code": code}, language)
}

// SendWelcome greets a newly registered farmer.
func (a *AlertService) SendWelcome(ctx context.Context, phoneNumber, language string) *models.SendResult {
	return a.sms.SendFromTemplate(ctx, phoneNumber, "welcome", nil, language)
}
