package mail

import "github.com/gabrielfarias/autobrilho-backend/internal/entity"

type FollowUpEmailData struct {
	Quantidade int
	Urgentes   int
	FollowUps  []entity.FollowUp
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
