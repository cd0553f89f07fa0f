// Package mail composes contact notification mails and sends them over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// Message is a plain-text mail
type Message struct {
	To        []string
	ReplyTo   string
	Subject   string
	Body      string
	MessageID string
}

// Contact is the content of a contact form submission
type Contact struct {
	ID      string
	Name    string
	Email   string
	Subject string
	Body    string
}

// ContactMessage renders a contact submission as a notification mail
func ContactMessage(c Contact) Message {
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from the folio contact form (%s)
`, c.Name, c.Email, c.Subject, c.Body, c.ID)

	return Message{
		ReplyTo:   c.Email,
		Subject:   fmt.Sprintf("Portfolio Contact: %s", c.Subject),
		Body:      body,
		MessageID: c.ID,
	}
}

// Bytes renders the message with CRLF line endings
func (m Message) Bytes(from string, date time.Time) []byte {
	var b strings.Builder
	header := func(k, v string) {
		if v == "" {
			return
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(sanitizeHeader(v))
		b.WriteString("\r\n")
	}
	header("From", from)
	header("To", strings.Join(m.To, ", "))
	header("Reply-To", m.ReplyTo)
	header("Subject", m.Subject)
	header("Date", date.Format(time.RFC1123Z))
	if m.MessageID != "" {
		header("Message-ID", "<"+m.MessageID+"@folio>")
	}
	header("Content-Type", "text/plain; charset=utf-8")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(m.Body, "\r\n", "\n"), "\n", "\r\n"))
	return []byte(b.String())
}

// sanitizeHeader drops line breaks so user input cannot add headers
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// Mailer sends messages
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// SMTPMailer delivers through an SMTP server with PLAIN auth
type SMTPMailer struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string // default recipient
}

// sendMail is swapped in tests
var sendMail = smtp.SendMail

func (s SMTPMailer) Send(ctx context.Context, m Message) error {
	if s.User == "" || s.Password == "" {
		return errors.New("SMTP credentials not configured")
	}
	if len(m.To) == 0 {
		if s.To == "" {
			return errors.New("no mail recipient configured")
		}
		m.To = []string{s.To}
	}
	port := s.Port
	if port == "" {
		port = "587"
	}

	auth := smtp.PlainAuth("", s.User, s.Password, s.Host)
	data := m.Bytes(s.User, time.Now())

	// net/smtp has no context support; abandon the wait on cancel
	done := make(chan error, 1)
	go func() {
		done <- sendMail(s.Host+":"+port, auth, s.User, m.To, data)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			log.Printf("mail: error sending %s: %v", m.MessageID, err)
			return err
		}
		log.Printf("mail: sent %s to %s", m.MessageID, strings.Join(m.To, ", "))
		return nil
	}
}
