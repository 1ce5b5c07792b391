package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/carlosmariath/painel-clinica-sub001/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client  *smsir.Client
	enabled bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:  client,
		enabled: true,
	}, nil
}

// SendTemplated sends a templated SMS to the given phone number with the
// given template parameters. If SMS is disabled, this is a no-op and
// returns nil.
//
// Parameters:
//   - ctx: Context for the request
//   - phoneNumber: Recipient phone number (E.164 format recommended)
//   - templateID: sms.ir template ID to use
//   - params: Template parameter key/value pairs
func (c *Client) SendTemplated(ctx context.Context, phoneNumber, templateID string, params map[string]string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}
	if len(params) == 0 {
		return fmt.Errorf("template parameters are required")
	}

	parameters := make([]smsir.UltraFastParameter, 0, len(params))
	for k, v := range params {
		parameters = append(parameters, smsir.UltraFastParameter{Key: k, Value: v})
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phoneNumber,
		TemplateID: templateID,
		Parameters: parameters,
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// SendAppointmentReminder sends an appointment reminder SMS.
// The template must have "date" and "time" parameters.
func (c *Client) SendAppointmentReminder(ctx context.Context, phoneNumber, templateID, date, clock string) error {
	return c.SendTemplated(ctx, phoneNumber, templateID, map[string]string{
		"date": date,
		"time": clock,
	})
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
