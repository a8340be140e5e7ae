// internal/email/mailer/invite.go
package mailer

import (
	"fmt"

	"github.com/bitvara/backoffice/internal/email"
)

// InviteTemplateData contains data for the member invite email template
type InviteTemplateData struct {
	Name              string
	OrganizationName  string
	Role              string
	TemporaryPassword string
	LoginLink         string
}

// SendInviteEmail notifies a user they were added to an organization. The
// temporary password is only set for accounts created by the invite.
func SendInviteEmail(s email.Sender, to string, data InviteTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "Bitvara",
		Subject:      fmt.Sprintf("You've been added to %s", data.OrganizationName),
		TemplateName: "invite",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
