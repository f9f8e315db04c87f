package config

// Provider names recognized by the SMS gateway.
const (
	ProviderAfricasTalking = "africas_talking"
	ProviderTwilio         = "twilio"
	ProviderAWSSNS         = "aws_sns"
	ProviderSimulated      = "simulated"
)

type SMSConfig struct {
	Provider         string                `yaml:"provider"`
	AfricasTalking   *AfricasTalkingConfig `yaml:"africas_talking"`
	Twilio           *TwilioConfig         `yaml:"twilio"`
	AWS              *AWSSNSConfig         `yaml:"aws"`
	SenderID         string                `yaml:"sender_id"`
	DefaultLanguage  string                `yaml:"default_language"`
	RatePerSecond    int                   `yaml:"rate_per_second"`
	MaxMessageLength int                   `yaml:"max_message_length"`
}

type AfricasTalkingConfig struct {
	APIKey   string `yaml:"api_key"`
	Username string `yaml:"username"`
	BaseURL  string `yaml:"base_url"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type AWSSNSConfig struct {
	Region string `yaml:"region"`
}

func loadSMSConfig() *SMSConfig {
	return &SMSConfig{
		Provider: getEnv("SMS_PROVIDER", ProviderAfricasTalking),
		AfricasTalking: &AfricasTalkingConfig{
			APIKey:   getEnv("SMS_API_KEY", ""),
			Username: getEnv("AT_USERNAME", "sandbox"),
			BaseURL:  getEnv("AT_BASE_URL", "https://api.africastalking.com"),
		},
		Twilio: &TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		},
		AWS: &AWSSNSConfig{
			Region: getEnv("AWS_REGION", ""),
		},
		SenderID:         getEnv("SMS_SENDER_ID", "AgriSmart"),
		DefaultLanguage:  getEnv("SMS_DEFAULT_LANGUAGE", "fr"),
		RatePerSecond:    getEnvAsInt("SMS_RATE_PER_SECOND", 10),
		MaxMessageLength: getEnvAsInt("SMS_MAX_LENGTH", 160),
	}
}
