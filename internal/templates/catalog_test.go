package templates

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogHasAllKeys(t *testing.T) {
	catalog := NewCatalog()
	required := []string{
		"weather_alert", "disease_alert", "irrigation_alert",
		"harvest_reminder", "market_price", "welcome", "otp",
		"sensor_alert", "training_reminder",
	}
	for _, key := range required {
		if !catalog.Has(key) {
			t.Fatalf("missing template %q", key)
		}
	}
}

func TestEveryTemplateHasFrenchVariant(t *testing.T) {
	catalog := NewCatalog()
	for _, key := range catalog.Keys() {
		if _, err := catalog.Render(key, DefaultLanguage, nil); err != nil {
			t.Fatalf("template %q has no French variant: %v", key, err)
		}
	}
}

func TestRenderSubstitutesVariables(t *testing.T) {
	catalog := NewCatalog()
	message, err := catalog.Render("otp", "fr", map[string]string{"code": "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "123456") {
		t.Fatalf("rendered message missing code: %q", message)
	}
	if strings.Contains(message, "{code}") {
		t.Fatalf("token left unsubstituted: %q", message)
	}
}

func TestRenderLanguageFallback(t *testing.T) {
	catalog := NewCatalog()
	fallback, err := catalog.Render("welcome", "en", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	french, err := catalog.Render("welcome", "fr", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback != french {
		t.Fatalf("unknown language did not fall back to French: %q", fallback)
	}

	dioula, err := catalog.Render("welcome", "dyu", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dioula == french {
		t.Fatalf("expected distinct Dioula variant")
	}
}

func TestRenderUnknownKey(t *testing.T) {
	catalog := NewCatalog()
	if _, err := catalog.Render("unknown_key", "fr", nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderLeavesUnknownTokensVerbatim(t *testing.T) {
	catalog := NewCatalog()
	message, err := catalog.Render("weather_alert", "fr", map[string]string{"message": "Pluie forte"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "{parcelle}") {
		t.Fatalf("unmatched token should remain verbatim: %q", message)
	}
}

func TestRenderIsPure(t *testing.T) {
	catalog := NewCatalog()
	vars := map[string]string{"message": "Orage", "parcelle": "Parcelle Nord"}

	first, err := catalog.Render("weather_alert", "bci", vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := catalog.Render("weather_alert", "bci", vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("rendering not deterministic: %q vs %q", first, second)
	}
}

func TestLanguagesAndKeys(t *testing.T) {
	catalog := NewCatalog()

	langs := catalog.Languages()
	if len(langs) != 3 || langs[0] != "fr" {
		t.Fatalf("unexpected languages: %v", langs)
	}

	keys := catalog.Keys()
	if len(keys) != 9 {
		t.Fatalf("expected 9 template keys, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}
