package service

import (
	"fmt"
	"html/template"
	"strings"

	"relay-notifier/models"
)

// reminderTemplate is parsed once at startup. html/template escapes the
// user-controlled fields (author, preview, draft comment) on render.
var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
  <div style="max-width:560px;margin:0 auto;padding:32px 24px;">
    <div style="background-color:#ffffff;border-radius:12px;padding:32px;">
      <h1 style="font-size:20px;color:#18181b;margin:0 0 16px;">Hi {{.FirstName}},</h1>
      <p style="font-size:15px;color:#3f3f46;line-height:1.6;margin:0 0 16px;">
        You scheduled a reminder to engage with <strong>{{.Author}}</strong>'s post. Now is a good time to jump in while the conversation is still active.
      </p>
{{- if .Preview}}
      <blockquote style="border-left:3px solid #6366f1;margin:0 0 16px;padding:8px 16px;background-color:#fafafa;font-size:14px;color:#52525b;">
        {{.Preview}}
      </blockquote>
{{- end}}
{{- if .Comment}}
      <p style="font-size:14px;color:#3f3f46;margin:0 0 8px;">Your draft comment:</p>
      <div style="background-color:#eef2ff;border-radius:8px;padding:12px 16px;margin:0 0 16px;font-size:14px;color:#3730a3;">
        {{.Comment}}
      </div>
{{- end}}
      <a href="{{.PostURL}}" style="display:inline-block;background-color:#6366f1;color:#ffffff;text-decoration:none;font-size:15px;font-weight:600;padding:12px 24px;border-radius:8px;">
        Open the post
      </a>
    </div>
    <p style="font-size:12px;color:#a1a1aa;text-align:center;margin:24px 0 0;">
      Manage your reminders on your <a href="{{.DashboardURL}}" style="color:#6366f1;">dashboard</a>.
    </p>
  </div>
</body>
</html>
`))

type reminderTemplateData struct {
	FirstName    string
	Author       string
	Preview      string
	Comment      string
	PostURL      string
	DashboardURL string
}

// EmailRenderer builds reminder emails from due reminders.
type EmailRenderer struct {
	from         string
	dashboardURL string
}

// NewEmailRenderer creates a new email renderer.
func NewEmailRenderer(from, dashboardURL string) *EmailRenderer {
	return &EmailRenderer{
		from:         from,
		dashboardURL: dashboardURL,
	}
}

// Render produces the email message for one due reminder.
func (r *EmailRenderer) Render(reminder *models.DueReminder) (*models.EmailMessage, error) {
	if reminder == nil {
		return nil, fmt.Errorf("reminder cannot be nil")
	}

	data := reminderTemplateData{
		FirstName:    firstName(reminder.Recipient.FullName),
		Author:       reminder.Post.PostAuthor,
		PostURL:      reminder.Post.PostURL,
		DashboardURL: r.dashboardURL,
	}
	if reminder.Post.PostPreview != nil {
		data.Preview = *reminder.Post.PostPreview
	}
	if reminder.Post.CommentText != nil {
		data.Comment = *reminder.Post.CommentText
	}

	var body strings.Builder
	if err := reminderTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render reminder email: %w", err)
	}

	return &models.EmailMessage{
		From:    r.from,
		To:      reminder.Recipient.Email,
		Subject: fmt.Sprintf("Time to engage with %s's post!", reminder.Post.PostAuthor),
		HTML:    body.String(),
	}, nil
}

func firstName(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "there"
	}
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}
