package templates

import "strings"

// Render selects the template variant for the requested language (falling
// back to French when the language has no entry) and substitutes every
// {name} token with the matching variable. Tokens without a matching
// variable are left verbatim. Rendering is pure: the same inputs always
// produce the same output.
func (c *Catalog) Render(key, language string, variables map[string]string) (string, error) {
	template, ok := c.templates[key]
	if !ok {
		return "", ErrTemplateNotFound
	}

	message, ok := template[language]
	if !ok {
		message = template[DefaultLanguage]
	}

	for name, value := range variables {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}

	return message, nil
}
