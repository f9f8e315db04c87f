package models

// WeatherAlertData describes a weather event affecting one or more parcels.
type WeatherAlertData struct {
	Message    string `json:"message"`
	ParcelName string `json:"parcel_name,omitempty"`
}

type DiseaseAlertData struct {
	Name       string `json:"name"`
	ParcelName string `json:"parcel_name"`
	Treatment  string `json:"treatment"`
}

type SensorAlertData struct {
	SensorName string `json:"sensor_name"`
	ParcelName string `json:"parcel_name"`
	Parameter  string `json:"parameter"`
	Value      string `json:"value"`
	Unit       string `json:"unit,omitempty"`
	Threshold  string `json:"threshold,omitempty"`
}

type HarvestReminderData struct {
	Crop             string `json:"crop"`
	ParcelName       string `json:"parcel_name"`
	DaysUntilHarvest int    `json:"days_until_harvest"`
}

type MarketPriceData struct {
	Product string `json:"product"`
	Price   string `json:"price"`
	Unit    string `json:"unit,omitempty"`
	Market  string `json:"market"`
}

type IrrigationAlertData struct {
	ParcelName string `json:"parcel_name"`
	Humidity   string `json:"humidity"`
}

type TrainingReminderData struct {
	Title    string `json:"title"`
	Time     string `json:"time"`
	Location string `json:"location"`
}
