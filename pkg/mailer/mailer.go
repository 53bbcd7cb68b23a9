// Package mailer sends transactional email over SMTP. Delivery is
// best-effort: callers fan out in background goroutines and log failures
// without retrying.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings. Mailer is disabled when Host or User is empty.
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// Mailer wraps a gomail dialer
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer, or nil when SMTP is not configured
func New(cfg Config) *Mailer {
	if cfg.Host == "" || cfg.User == "" {
		return nil
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   from,
	}
}

// NewPostNotification describes a "new post in followed category" email
type NewPostNotification struct {
	To           string
	CategoryName string
	PostTitle    string
	PostURL      string
}

// SendNewPostNotification delivers a single follower notification.
// A nil Mailer silently drops the message.
func (m *Mailer) SendNewPostNotification(n NewPostNotification) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", fmt.Sprintf("New post in %s: %s", n.CategoryName, n.PostTitle))
	msg.SetBody("text/plain", fmt.Sprintf(
		"A new post was created in %s.\n\n%q\n\nView it here: %s",
		n.CategoryName, n.PostTitle, n.PostURL,
	))
	msg.AddAlternative("text/html", fmt.Sprintf(
		`<p>A new post was created in <strong>%s</strong>.</p><p>%q</p><p><a href="%s">View post</a></p>`,
		n.CategoryName, n.PostTitle, n.PostURL,
	))

	return m.dialer.DialAndSend(msg)
}
