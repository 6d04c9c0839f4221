package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/chimeco/agenda-api/internal/config"
)

const ticketBody = `
<h2>Reserva confirmada</h2>
<p>Olá {{.Name}}, sua reserva para <strong>{{.EventTitle}}</strong> está confirmada.</p>
<p>Data: {{.EventStart.Format "02/01/2006 15:04"}}<br>
Ingressos: {{.Quantity}}<br>
Código de confirmação: <strong>{{.Code}}</strong></p>
<p>Apresente o QR em anexo na entrada.</p>
`

type Mailer struct {
	cfg  *config.Config
	tmpl *template.Template
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		cfg:  cfg,
		tmpl: template.Must(template.New("ticket").Parse(ticketBody)),
	}
}

func (m *Mailer) Send(t Ticket) error {
	if m.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp não configurado, boleto %s não enviado", t.Code)
	}
	if t.Email == "" {
		return fmt.Errorf("reserva %s sem e-mail", t.Code)
	}

	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, t); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPFrom)
	msg.SetHeader("To", t.Email)
	msg.SetHeader("Subject", "Confirmação de reserva: "+t.EventTitle)
	msg.SetBody("text/html", body.String())

	if qr, err := ticketQR(t.Code, 256); err == nil {
		msg.Attach(
			fmt.Sprintf("boleto_%s.png", t.Code),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qr)
				return err
			}),
		)
	}

	d := gomail.NewDialer(
		m.cfg.SMTPHost,
		m.cfg.SMTPPort,
		m.cfg.SMTPUsername,
		m.cfg.SMTPPassword,
	)

	return d.DialAndSend(msg)
}
