package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// InviteParams feed the invite email template.
type InviteParams struct {
	Name         string
	MeetingTitle string
	JoinLink     string
	Moderator    bool
}

var inviteTmpl = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #0f172a; color: #f8fafc; padding: 40px; margin: 0; }
    .container { max-width: 600px; margin: 0 auto; background: #1e293b; border-radius: 16px; padding: 40px; }
    h1 { color: #f8fafc; font-size: 24px; margin-bottom: 20px; }
    p { color: #94a3b8; line-height: 1.6; margin-bottom: 16px; }
    .button { display: inline-block; background: linear-gradient(135deg, #8b5cf6, #d946ef); color: white !important; padding: 14px 28px; border-radius: 12px; text-decoration: none; font-weight: 600; margin: 20px 0; }
    .role { display: inline-block; background: {{if .Moderator}}#f59e0b20{{else}}#8b5cf620{{end}}; color: {{if .Moderator}}#fbbf24{{else}}#a78bfa{{end}}; padding: 4px 12px; border-radius: 20px; font-size: 12px; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #334155; color: #64748b; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>You're Invited!</h1>
    <p>Hi {{.Name}},</p>
    <p>You've been invited to <strong>{{.MeetingTitle}}</strong> as a <span class="role">{{if .Moderator}}Moderator{{else}}Participant{{end}}</span>.</p>
    {{if .JoinLink}}<p><a href="{{.JoinLink}}" class="button">Join Meeting</a></p>{{else}}<p><em>Join link will be sent separately.</em></p>{{end}}
    <div class="footer">Sent via PlugNMeet Manager</div>
  </div>
</body>
</html>`))

// RenderInvite produces the subject and HTML body for an invite email.
func RenderInvite(p InviteParams) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := inviteTmpl.Execute(&buf, p); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("You're invited: %s", p.MeetingTitle), buf.String(), nil
}
