// Package mailer is the client for the templated-email service that
// sends booking confirmations. It is invoked by the API layer only
// after a reservation has been persisted.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts confirmation parameters to the mail service endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a new mail service client.
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation sends the confirmation email for a persisted
// reservation.
func (c *Client) SendConfirmation(ctx context.Context, confirmation *Confirmation) error {
	body, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("%w: failed to encode confirmation: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("SendConfirmation: sent to %s for %s %s", confirmation.Email, confirmation.Date, confirmation.Time)
	return nil
}
