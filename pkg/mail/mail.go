// Package mail sends the order reminder emails over SMTP.
//
//	mail.To("alice@example.com").
//	    Subject("About your recent order").
//	    Body("<p>Hi Alice</p>").
//	    Send()
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shashiranjanraj/charvi/config"
)

type account struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func loadAccount() account {
	return account{
		host:     config.Get("MAIL_HOST", "smtp.mailtrap.io"),
		port:     config.Get("MAIL_PORT", "587"),
		username: config.Get("MAIL_USERNAME", ""),
		password: config.Get("MAIL_PASSWORD", ""),
		from:     config.Get("MAIL_FROM", "hello@charvi.app"),
		fromName: config.Get("MAIL_FROM_NAME", "Charvi"),
	}
}

// Message accumulates an email through the builder methods and is sent
// with Send.
type Message struct {
	to      []string
	subject string
	body    string
	html    bool
	acct    account
}

// To starts a message addressed to the given recipients.
func To(addresses ...string) *Message {
	return &Message{to: addresses, html: true, acct: loadAccount()}
}

// Subject sets the subject line.
func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// Body sets an HTML body.
func (m *Message) Body(html string) *Message {
	m.body = html
	m.html = true
	return m
}

// Text sets a plain-text body.
func (m *Message) Text(text string) *Message {
	m.body = text
	m.html = false
	return m
}

// Send delivers the message. Port 465 gets implicit TLS, everything
// else goes through net/smtp's STARTTLS path.
func (m *Message) Send() error {
	if m.acct.username == "" {
		return fmt.Errorf("mail: MAIL_USERNAME not configured")
	}

	addr := m.acct.host + ":" + m.acct.port
	auth := smtp.PlainAuth("", m.acct.username, m.acct.password, m.acct.host)
	raw := m.render()

	if m.acct.port == "465" {
		return sendImplicitTLS(addr, m.acct.host, auth, m.acct.from, m.to, raw)
	}
	return smtp.SendMail(addr, auth, m.acct.from, m.to, raw)
}

func (m *Message) render() []byte {
	contentType := "text/plain"
	if m.html {
		contentType = "text/html"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", m.acct.fromName, m.acct.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", m.subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=\"UTF-8\"\r\n\r\n", contentType)
	b.WriteString(m.body)
	return []byte(b.String())
}

func sendImplicitTLS(addr, host string, auth smtp.Auth, from string, to []string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
