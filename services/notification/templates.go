package notification

import "html/template"

var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">You're invited: {{.Title}}</h2>
  <p>Hi {{.RecipientName}},</p>
  <p>{{.OrganizerName}} has scheduled a meeting with you.</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 6px 12px; font-weight: bold;">Date</td><td style="padding: 6px 12px;">{{.Date}}</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Time</td><td style="padding: 6px 12px;">{{.TimeRange}}</td></tr>
    {{if .Description}}<tr><td style="padding: 6px 12px; font-weight: bold;">Details</td><td style="padding: 6px 12px;">{{.Description}}</td></tr>{{end}}
  </table>
  {{if .Online}}
  <p>
    <a href="{{.MeetingLink}}" style="display: inline-block; padding: 10px 24px; background-color: {{.PlatformColor}}; color: #fff; text-decoration: none; border-radius: 4px;">
      Join on {{.PlatformName}}
    </a>
  </p>
  <p style="font-size: 12px; color: #777;">Or copy this link: {{.MeetingLink}}</p>
  {{else}}
  <p><strong>Location:</strong> {{.Address}}</p>
  {{if .MapsLink}}<p><a href="{{.MapsLink}}">Open in Maps</a></p>{{end}}
  {{end}}
  {{if .Notes}}<p><em>{{.Notes}}</em></p>{{end}}
  <p style="font-size: 12px; color: #777;">This invitation was sent automatically. Please do not reply to this email.</p>
</body>
</html>`))

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">Coming up: {{.Title}}</h2>
  <p>Hi {{.RecipientName}},</p>
  <p>Your meeting with {{.OrganizerName}} starts soon: {{.Date}}, {{.TimeRange}}.</p>
  {{if .Online}}
  <p>
    <a href="{{.MeetingLink}}" style="display: inline-block; padding: 10px 24px; background-color: {{.PlatformColor}}; color: #fff; text-decoration: none; border-radius: 4px;">
      Join on {{.PlatformName}}
    </a>
  </p>
  {{else}}
  <p><strong>Location:</strong> {{.Address}}</p>
  {{if .MapsLink}}<p><a href="{{.MapsLink}}">Open in Maps</a></p>{{end}}
  {{end}}
  <p style="font-size: 12px; color: #777;">This reminder was sent automatically. Please do not reply to this email.</p>
</body>
</html>`))

var cancellationTemplate = template.Must(template.New("cancellation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #b00020;">Cancelled: {{.Title}}</h2>
  <p>Hi {{.RecipientName}},</p>
  <p>{{.OrganizerName}} has cancelled the meeting scheduled for {{.Date}}, {{.TimeRange}}.</p>
  {{if .Notes}}<p><em>{{.Notes}}</em></p>{{end}}
  <p style="font-size: 12px; color: #777;">This notice was sent automatically. Please do not reply to this email.</p>
</body>
</html>`))
