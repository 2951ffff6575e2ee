package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// MailService sends transactional email through an HTTP mail provider.
type MailService struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

// NewMailService creates a new MailService.
func NewMailService(apiURL, apiKey, from string) *MailService {
	return &MailService{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{},
	}
}

type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// SendEmail delivers one message. When the provider is not configured the
// call logs and returns nil so local environments work without credentials.
func (s *MailService) SendEmail(ctx context.Context, to, subject, text, html string) error {
	if s.apiURL == "" || s.apiKey == "" {
		log.Println("[Mail] Provider not configured, skipping send")
		return nil
	}

	msg := mailMessage{
		From:    s.from,
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Mail] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[Mail] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}

	return nil
}
