package templates

import (
	"errors"
	"sort"
)

// DefaultLanguage is French; every template carries a French variant and
// requests for a missing language fall back to it.
const DefaultLanguage = "fr"

// ErrTemplateNotFound is returned when a template key has no entry.
var ErrTemplateNotFound = errors.New("template not found")

// supportedLanguages lists the language codes the catalog knows about:
// French, Baoulé (bci) and Dioula (dyu).
var supportedLanguages = []string{"fr", "bci", "dyu"}

// smsTemplates maps a template key to its per-language patterns.
// Placeholders use {name} syntax and are substituted at render time.
var smsTemplates = map[string]map[string]string{
	"weather_alert": {
		"fr":  "⚠️ ALERTE METEO AgriSmart: {message}. Parcelle: {parcelle}. Protégez vos cultures!",
		"bci": "⚠️ ALERTE: {message}. {parcelle} su. Aw nian aw djué!",
		"dyu": "⚠️ ALERTE: {message}. {parcelle} kɔnɔ. Aw ka sɛnɛ tanga!",
	},
	"disease_alert": {
		"fr":  "🦠 ALERTE MALADIE: {disease} détectée sur {parcelle}. Traitez avec: {treatment}",
		"bci": "🦠 MALADIE: {disease} {parcelle} su. Drogue: {treatment}",
		"dyu": "🦠 BANA: {disease} {parcelle} la. Fura: {treatment}",
	},
	"irrigation_alert": {
		"fr":  "💧 IRRIGATION: {parcelle} nécessite arrosage. Humidité sol: {humidity}%",
		"bci": "💧 ARROSAGE: {parcelle} klo su. Ji: {humidity}%",
		"dyu": "💧 JI: {parcelle} bɛ ji fɛ. Dugukolo jiidiya: {humidity}%",
	},
	"harvest_reminder": {
		"fr":  "🌾 RECOLTE: {culture} sur {parcelle} prête à récolter dans {days} jours",
		"bci": "🌾 RECOLTE: {culture} {parcelle} su ti {days} lé nun",
		"dyu": "🌾 SUMAN: {culture} {parcelle} kɔnɔ ka kan ka tigɛ tile {days} kɔnɔ",
	},
	"market_price": {
		"fr":  "💰 PRIX: {product} à {price} FCFA/{unit} au marché de {market}",
		"bci": "💰 SAN: {product} ti {price} FCFA/{unit} {market} su",
		"dyu": "💰 SƆNGƆ: {product} ye {price} FCFA/{unit} ye {market} la",
	},
	"welcome": {
		"fr":  "Bienvenue sur AgriSmart CI! Votre compte agriculteur est activé. Appelez le 1234 pour aide.",
		"bci": "Akwaba AgriSmart CI su! Aw compte ti kpa. Frapper 1234 aide ti.",
		"dyu": "Aw ni sɔgɔma AgriSmart CI! Aw ka jatebila dabɔra. 1234 wele dɛmɛ fɛ.",
	},
	"otp": {
		"fr":  "Votre code AgriSmart: {code}. Valide 10 minutes. Ne partagez pas ce code.",
		"bci": "Aw AgriSmart code: {code}. Minute 10 kpa. Kan man fa sran be.",
		"dyu": "Aw ka AgriSmart kode: {code}. Miniti 10 kɔnɔ. Kana a di mɔgɔ ma.",
	},
	"sensor_alert": {
		"fr":  "📊 CAPTEUR: {sensor} sur {parcelle} - {parameter}: {value}{unit} (seuil: {threshold})",
		"bci": "📊 CAPTEUR: {sensor} {parcelle} su - {parameter}: {value}{unit}",
		"dyu": "📊 FEERE: {sensor} {parcelle} la - {parameter}: {value}{unit}",
	},
	"training_reminder": {
		"fr":  "📚 FORMATION: '{title}' commence demain à {time}. Lieu: {location}",
		"bci": "📚 FORMATION: '{title}' ti siman {time}. Blo: {location}",
		"dyu": "📚 KALANKO: '{title}' bɛna daminɛ sini {time}. Yɔrɔ: {location}",
	},
}

// Catalog is the process-wide registry of SMS templates. It is immutable
// after construction.
type Catalog struct {
	templates map[string]map[string]string
}

func NewCatalog() *Catalog {
	return &Catalog{templates: smsTemplates}
}

// Has reports whether a template key exists.
func (c *Catalog) Has(key string) bool {
	_, ok := c.templates[key]
	return ok
}

// Keys returns the sorted list of available template keys.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.templates))
	for key := range c.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Languages returns the supported language codes.
func (c *Catalog) Languages() []string {
	langs := make([]string, len(supportedLanguages))
	copy(langs, supportedLanguages)
	return langs
}
