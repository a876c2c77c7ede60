package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Template data. All string fields pass through html/template escaping, so
// untrusted submitter text can never inject markup into a message.

type UploadConfirmationData struct {
	ProjectName string
	FileCount   int
	TotalSize   string // already formatted "X.XX MB"
	UploadTime  string
}

type ContactAlertData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt string
}

type ContactAckData struct {
	Name    string
	Subject string
	Message string
}

const (
	TemplateUploadConfirmation = "upload_confirmation"
	TemplateContactAlert       = "contact_alert"
	TemplateContactAck         = "contact_ack"
)

// nl2br escapes s and then turns line breaks into <br>. This is the only
// transformation message bodies get before rendering.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var templateSources = map[string]string{
	TemplateUploadConfirmation: `
<div style="font-family: Arial, sans-serif; background: #051a24; color: #fff; padding: 20px;">
  <h2 style="color: #00d9a3;">&#10003; Project Uploaded Successfully!</h2>
  <div style="background: rgba(0, 217, 163, 0.1); padding: 15px; border-radius: 8px; margin: 15px 0;">
    <p><strong>Project Name:</strong> {{.ProjectName}}</p>
    <p><strong>Files Uploaded:</strong> {{.FileCount}}</p>
    <p><strong>Total Size:</strong> {{.TotalSize}}</p>
    <p><strong>Upload Time:</strong> {{.UploadTime}}</p>
  </div>
  <p style="color: #00d9a3; margin-top: 20px;">Thank you for using the portfolio management system!</p>
</div>`,

	TemplateContactAlert: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">New Contact Message</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>
  <div style="background: #ffffff; padding: 20px; border-left: 4px solid #3b82f6;">
    <p><strong>Message:</strong></p>
    <p style="line-height: 1.6;">{{nl2br .Message}}</p>
  </div>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">
  <p style="color: #666; font-size: 12px;">Received: {{.ReceivedAt}}</p>
</div>`,

	TemplateContactAck: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">Thank You for Reaching Out!</h2>
  <p>Hi {{.Name}},</p>
  <p>I have received your message and will get back to you as soon as possible,
  usually within 24-48 hours.</p>
  <div style="background: #f5f5f5; padding: 15px; margin: 15px 0;">
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Your Message:</strong></p>
    <p style="line-height: 1.6;">{{nl2br .Message}}</p>
  </div>
  <p>Best regards,<br>Saddala Jayachandra</p>
</div>`,
}

// TemplateManager renders the built-in notification templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	funcs := template.FuncMap{"nl2br": nl2br}
	for name, src := range templateSources {
		t, err := template.New(name).Funcs(funcs).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = t
	}

	return tm, nil
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
