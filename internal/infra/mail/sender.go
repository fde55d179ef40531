package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendResumoFollowUps envia para a equipe o resumo dos clientes parados.
func (s *EmailSender) SendResumoFollowUps(to string, followups []entity.FollowUp) error {
	urgentes := 0
	for _, f := range followups {
		if f.Nivel == entity.NivelUrgente {
			urgentes++
		}
	}

	data := FollowUpEmailData{
		Quantidade: len(followups),
		Urgentes:   urgentes,
		FollowUps:  followups,
	}

	tmplPath := filepath.Join("templates", "followup.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("⏰ Follow-up: %d clientes aguardando contato", len(followups)))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
