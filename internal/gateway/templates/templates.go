// Package templates renders the gateway's static HTML pages by substituting
// {{NAME}} placeholders in files embedded at build time.
//
// The renderer performs no escaping of its own. Callers must pass
// user-influenced values through EscapeHTML (and JSValue for script
// contexts) before substitution.
package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

//go:embed public/*.html
var files embed.FS

// Render loads the named template from the embedded filesystem and replaces
// every {{KEY}} marker with the corresponding value.
func Render(name string, values map[string]string) (string, error) {
	raw, err := files.ReadFile("public/" + name)
	if err != nil {
		return "", fmt.Errorf("templates: unknown template %q: %w", name, err)
	}

	page := string(raw)
	for key, value := range values {
		page = strings.ReplaceAll(page, "{{"+key+"}}", value)
	}
	return page, nil
}

// EscapeHTML escapes a string for safe inclusion in HTML text content.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// JSValue formats a string as a JavaScript literal for script contexts:
// a JSON-quoted string, or the literal null for an absent value.
func JSValue(value string) string {
	if value == "" {
		return "null"
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "null"
	}
	return string(b)
}
