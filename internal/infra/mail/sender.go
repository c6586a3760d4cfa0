package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/builtafrica/spin-promo/internal/entity"
)

func NewEmailSender(host string, port int, user, password, opsMailbox, fromInternal, fromCS string) *EmailSender {
	if fromCS == "" {
		fromCS = fromInternal
	}
	return &EmailSender{
		Host:         host,
		Port:         port,
		User:         user,
		Password:     password,
		OpsMailbox:   opsMailbox,
		FromInternal: fromInternal,
		FromCS:       fromCS,
	}
}

// SendActivityNotice manda o dump do giro pra caixa de operações.
func (s *EmailSender) SendActivityNotice(a entity.SpinActivity) error {
	wonLabel := "No"
	prizeLabel := "-"
	if a.HasWonPrize {
		wonLabel = "Yes"
		prizeLabel = a.Prize
	}

	data := NoticeEmailData{
		Name:          a.Name,
		Email:         a.Email,
		PhoneNumber:   a.PhoneNumber,
		WheelID:       a.WheelID,
		Prize:         prizeLabel,
		HasWonPrize:   wonLabel,
		NumberOfSpins: a.NumberOfSpins,
	}

	text := fmt.Sprintf(
		"New spin activity recorded.\nName: %s\nEmail: %s\nPhone: %s\nWheel ID: %s\nPrize: %s\nHas Won Prize: %s\nSpins: %d",
		a.Name, a.Email, a.PhoneNumber, a.WheelID, prizeLabel, wonLabel, a.NumberOfSpins,
	)

	return s.send(
		fmt.Sprintf("\"Built Team\" <%s>", s.FromInternal),
		s.OpsMailbox,
		"New Spin Activity Recorded",
		text,
		"activity_notice.html",
		data,
	)
}

// SendPrizeWon parabeniza o vencedor e avisa que o time entra em contato.
func (s *EmailSender) SendPrizeWon(to, name, prize string) error {
	text := fmt.Sprintf(
		"Hi %s,\n\nCongratulations on participating in Built's Spin-the-Wheel promotion!\nWe're excited to let you know that you've won:\n %s\nOur team will get in touch with you to help claim your reward.\nThank you for engaging with us - we truly value your time and support. Keep an eye out for more exciting promos and rewards from Built!\n\nBest regards,\nThe Built Team",
		name, prize,
	)

	return s.send(
		fmt.Sprintf("\"Customer Success\" <%s>", s.FromCS),
		to,
		"Congratulations! You've Won in Built's Spin-the-Wheel Promo",
		text,
		"prize_won.html",
		PrizeWonEmailData{Name: name, Prize: prize},
	)
}

// SendTryAgain agradece quem estourou o limite de giros sem ganhar.
func (s *EmailSender) SendTryAgain(to, name string) error {
	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for participating in Built's Spin-the-Wheel promotion!\nThis time, you landed on \"Try Again\" - but don't worry, there are still more chances to win exciting rewards in our future promos.\nWe truly appreciate your time and engagement, and we can't wait to see you spin again!\n\nBest regards,\nThe Built Team",
		name,
	)

	return s.send(
		fmt.Sprintf("\"Customer Success\" <%s>", s.FromCS),
		to,
		"Thank You for Playing Built's Spin-the-Wheel",
		text,
		"try_again.html",
		TryAgainEmailData{Name: name},
	)
}

func (s *EmailSender) send(from, to, subject, textBody, templateName string, data any) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
