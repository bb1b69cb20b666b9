package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Service sends notification emails through the Resend HTTP API. A nil
// *Service is valid and sends nothing, so callers never need to branch on
// whether notifications are configured.
type Service struct {
	apiKey string
	from   string
	to     string
}

type payload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

func NewService(apiKey, adminEmail string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if adminEmail == "" {
		return nil, fmt.Errorf("admin notification address is required")
	}

	return &Service{
		apiKey: apiKey,
		from:   "Nice Homes <noreply@nicehomesdevelopers.com>",
		to:     adminEmail,
	}, nil
}

func (s *Service) send(subject, html string) error {
	if s == nil {
		return nil
	}

	jsonData, err := json.Marshal(payload{
		From:    s.from,
		To:      s.to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("error marshaling email data: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error: %s", string(body))
	}

	return nil
}
