// Package roster builds the extraction prompt for provider roster emails.
package roster

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/rosterize/rosterize/internal/roster"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// SystemPrompt returns the system prompt for roster extraction.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt for one email. The prompt embeds the
// schema serialization, the exact sentinel value, the MM/DD/YYYY date
// directive, and the email text verbatim inside triple-quote delimiters.
// Output is deterministic for identical inputs; the email text is never
// truncated here.
func UserPrompt(schema *roster.Schema, emailText string) string {
	var buf bytes.Buffer
	data := struct {
		Sentinel   string
		SchemaJSON string
		EmailText  string
	}{
		Sentinel:   roster.Sentinel,
		SchemaJSON: schema.MarshalIndentJSON(),
		EmailText:  emailText,
	}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}
