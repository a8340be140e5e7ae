// internal/email/mailer/welcome.go
package mailer

import "github.com/bitvara/backoffice/internal/email"

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	Name      string
	LoginLink string
}

// SendWelcomeEmail greets a newly signed-up user.
func SendWelcomeEmail(s email.Sender, to, name, loginLink string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Bitvara",
		Subject:      "Welcome to Bitvara",
		TemplateName: "welcome",
		TemplateData: WelcomeTemplateData{
			Name:      name,
			LoginLink: loginLink,
		},
	}

	return s.SendEmail(emailData)
}
