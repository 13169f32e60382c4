package utils

import (
	"fmt"
	"log"

	"velora_back_end/internal/config"

	"github.com/wneessen/go-mail"
)

// SendContactEmail transmet un message du formulaire de contact du site.
// Le Reply-To pointe sur le visiteur pour pouvoir lui répondre directement.
func SendContactEmail(name, visitorEmail, body string) error {
	msg := mail.NewMsg()

	if err := msg.From(config.SMTPUsername()); err != nil {
		return err
	}
	if err := msg.To(config.ContactEmail()); err != nil {
		return err
	}
	if err := msg.ReplyTo(visitorEmail); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Nouveau message du site — %s", name))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("De : %s <%s>\n\n%s", name, visitorEmail, body))

	client, err := mail.NewClient(config.SMTPHost(),
		mail.WithPort(config.SMTPPort()),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(config.SMTPUsername()),
		mail.WithPassword(config.SMTPPassword()),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de contact à", config.ContactEmail())
	return client.DialAndSend(msg)
}
