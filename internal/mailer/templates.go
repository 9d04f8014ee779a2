package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "reset"}}<p>Hi {{.Name}},</p>
<p>Use the link below to choose a new password. It expires in {{.Expiry}}.</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>If you did not ask for this, ignore this email.</p>{{end}}
{{define "passwordChanged"}}<p>Hi {{.Name}},</p>
<p>Your password was changed. If this was not you, reset it immediately.</p>{{end}}
{{define "enrolled"}}<p>Hi {{.Name}},</p>
<p>You are now enrolled in <strong>{{.Course}}</strong>. Happy learning!</p>{{end}}
{{define "payment"}}<p>Hi {{.Name}},</p>
<p>We received your payment for order <strong>{{.OrderID}}</strong> ({{.Amount}}).</p>{{end}}
`))

func render(name string, data any) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		// Templates are static; a failure here is a programming error.
		panic(fmt.Sprintf("mailer: render %s: %v", name, err))
	}
	return buf.String()
}

// PasswordReset builds the reset-link email.
func PasswordReset(to, name, link string, expiry time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Reset your password",
		Body: render("reset", map[string]any{
			"Name":   name,
			"Link":   link,
			"Expiry": expiry.String(),
		}),
	}
}

// PasswordChanged notifies the user after a password change.
func PasswordChanged(to, name string) Message {
	return Message{
		To:      to,
		Subject: "Your password was updated",
		Body:    render("passwordChanged", map[string]any{"Name": name}),
	}
}

// EnrollmentConfirmed welcomes a student to a course.
func EnrollmentConfirmed(to, name, course string) Message {
	return Message{
		To:      to,
		Subject: "Enrolled in " + course,
		Body:    render("enrolled", map[string]any{"Name": name, "Course": course}),
	}
}

// PaymentReceived confirms a paid order.
func PaymentReceived(to, name, orderID string, amount float64) Message {
	return Message{
		To:      to,
		Subject: "Payment received",
		Body: render("payment", map[string]any{
			"Name":    name,
			"OrderID": orderID,
			"Amount":  fmt.Sprintf("%.2f", amount),
		}),
	}
}
