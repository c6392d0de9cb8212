package facades

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/wneessen/go-mail"
)

// ErrMailerNotConfigured is returned when SMTP credentials are missing.
var ErrMailerNotConfigured = errors.New("smtp credentials not configured")

const (
	motivationSubject = "Daily Motivation"
	imageContentID    = "generated_image"
)

// SMTPConfig holds outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends the daily motivation email with the generated image inline.
type SMTPMailer struct {
	cfg  SMTPConfig
	dial func(cfg SMTPConfig) (mailSender, error)
}

// NewSMTPMailer creates a mailer. From defaults to User.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{cfg: cfg, dial: dialSMTP}
}

// dialSMTP builds a client that authenticates with PLAIN and upgrades the
// connection with STARTTLS when the server offers it.
func dialSMTP(cfg SMTPConfig) (mailSender, error) {
	c, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Configured reports whether credentials are present.
func (m *SMTPMailer) Configured() bool {
	return m.cfg.User != "" && m.cfg.Password != ""
}

// SendMotivation mails the image at imagePath to the recipient.
func (m *SMTPMailer) SendMotivation(ctx context.Context, to, imagePath string, mode models.Mode) error {
	if !m.Configured() {
		logger.Log.Warnw("SMTP credentials not configured, skipping email", "to", to)
		return ErrMailerNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Stat(imagePath); err != nil {
		logger.Log.Errorw("generated image not found", "path", imagePath, "error", err)
		return fmt.Errorf("read generated image: %w", err)
	}

	msg, err := m.buildMessage(to, imagePath, mode)
	if err != nil {
		return err
	}

	client, err := m.dial(m.cfg)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	logger.Log.Infow("connecting to SMTP server", "host", m.cfg.Host, "port", m.cfg.Port)
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.Log.Errorw("failed to send motivation email", "to", to, "error", err)
		return fmt.Errorf("send mail: %w", err)
	}

	logger.Log.Infow("motivation email sent", "to", to)
	return nil
}

func tagline(mode models.Mode) string {
	if mode == models.ModeShame {
		return "Don't let this be you"
	}
	return "Get after it"
}

// buildMessage lays out a multipart/related message: a plain text body with an
// HTML alternative that references the embedded image by Content-ID.
func (m *SMTPMailer) buildMessage(to, imagePath string, mode models.Mode) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithEncoding(mail.NoEncoding))
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	msg.Subject(motivationSubject)
	msg.SetDate()

	line := tagline(mode)
	msg.SetBodyString(mail.TypeTextPlain, motivationSubject+"\n\n"+line+"\n")
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(line))
	msg.EmbedFile(imagePath, mail.WithFileContentID(imageContentID))

	return msg, nil
}

func htmlBody(tagline string) string {
	return `<html>
  <head></head>
  <body style="font-family: Arial, sans-serif; text-align: center; padding: 20px;">
    <h1 style="color: #646cff;">` + motivationSubject + `</h1>
    <p style="font-size: 24px; font-weight: bold; margin: 30px 0;">` + tagline + `</p>
    <div style="margin: 30px 0;">
      <img src="cid:` + imageContentID + `" style="max-width: 600px; border-radius: 8px;" alt="Your Motivational Image">
    </div>
    <footer style="margin-top: 50px; padding-top: 20px; border-top: 1px solid #ccc; color: #666;">
      <p>Powered by <a href="https://motiv8.ai" style="color: #646cff; text-decoration: none;">motiv8.ai</a></p>
    </footer>
  </body>
</html>
`
}
