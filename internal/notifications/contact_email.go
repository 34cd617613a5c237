package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"
)

var contactNotificationTmpl = template.Must(template.New("contact").Parse(`
<h2>New contact message</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Received:</strong> {{.Received}}</p>
<hr>
<p>{{.Message}}</p>
`))

// SendContactNotification forwards a visitor's contact message to the site
// owner's inbox.
func (c *BrevoClient) SendContactNotification(ctx context.Context, toEmail, name, email, subject, message string, receivedAt time.Time) (string, error) {
	data := struct {
		Name     string
		Email    string
		Subject  string
		Message  string
		Received string
	}{
		Name:     name,
		Email:    email,
		Subject:  subject,
		Message:  message,
		Received: receivedAt.Format(time.RFC1123),
	}

	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	mailSubject := fmt.Sprintf("Portfolio contact: %s", subject)
	return c.sendHTML(ctx, toEmail, "", mailSubject, buf.String())
}
