package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Button is one quick-reply option in an outbound message. Titles over
// 20 characters are truncated by the transport.
type Button struct {
	ID    string
	Title string
}

const (
	maxButtons     = 3
	maxButtonTitle = 20
	whatsappPrefix = "whatsapp:"
)

// ChannelConfig carries the messaging-channel credentials together with
// an explicit expiry. Callers refresh it through the provider func
// instead of reading ambient globals.
type ChannelConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	ExpiresAt  time.Time
}

func (c ChannelConfig) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// NotifyService delivers conversation messages over WhatsApp via
// Twilio. It implements Messenger.
type NotifyService struct {
	config func() (ChannelConfig, error)
	now    func() time.Time
}

func NewNotifyService(config func() (ChannelConfig, error)) *NotifyService {
	return &NotifyService{config: config, now: time.Now}
}

func (s *NotifyService) SendText(phone, message string) error {
	cfg, err := s.channelConfig()
	if err != nil {
		return err
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(whatsappPrefix + phone)
	params.SetFrom(whatsappPrefix + cfg.FromNumber)
	params.SetBody(message)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error al enviar WhatsApp a %s: %v", phone, err)
		return fmt.Errorf("failed to send message: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("Mensaje enviado a %s. SID: %s", phone, *resp.Sid)
	}
	return nil
}

// SendButtons renders the options as a numbered list in the body.
// Interactive WhatsApp buttons need pre-approved content templates, so
// replies are accepted by number or by title.
func (s *NotifyService) SendButtons(phone, body string, buttons []Button, header, footer string) error {
	if len(buttons) > maxButtons {
		buttons = buttons[:maxButtons]
	}

	var b strings.Builder
	if header != "" {
		b.WriteString("*" + header + "*\n\n")
	}
	b.WriteString(body)
	for i, btn := range buttons {
		title := btn.Title
		if len([]rune(title)) > maxButtonTitle {
			title = string([]rune(title)[:maxButtonTitle])
		}
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, title))
	}
	if footer != "" {
		b.WriteString("\n\n_" + footer + "_")
	}
	return s.SendText(phone, b.String())
}

func (s *NotifyService) channelConfig() (ChannelConfig, error) {
	cfg, err := s.config()
	if err != nil {
		return ChannelConfig{}, fmt.Errorf("channel config unavailable: %w", err)
	}
	if cfg.Expired(s.now()) {
		return ChannelConfig{}, fmt.Errorf("channel config expired at %s", cfg.ExpiresAt)
	}
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return ChannelConfig{}, fmt.Errorf("channel credentials incomplete")
	}
	return cfg, nil
}
