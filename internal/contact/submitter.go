package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"folio/internal/mail"
)

// ErrRejected marks a permanent delivery failure that retrying will not fix
var ErrRejected = errors.New("submission rejected")

// Submission is one delivery attempt of a validated form
type Submission struct {
	ID          string    `json:"id"`
	Fields      Fields    `json:"fields"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewSubmission stamps fields with a fresh idempotency key
func NewSubmission(fs Fields, now time.Time) Submission {
	return Submission{
		ID:          uuid.NewString(),
		Fields:      fs,
		SubmittedAt: now,
	}
}

// Submitter delivers contact submissions. Implementations must treat a
// repeated Submission.ID as the same message.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, s Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error { return f(ctx, s) }

// Simulated waits Delay and always succeeds
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Submit(ctx context.Context, sub Submission) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		log.Printf("contact: simulated delivery of %s from %s", sub.ID, sub.Fields.Email)
		return nil
	}
}

// HTTPSubmitter posts submissions to a folio-relay endpoint
type HTTPSubmitter struct {
	URL         string
	Client      *http.Client
	Timeout     time.Duration // per attempt
	MaxAttempts int
	Backoff     time.Duration // doubled after every failed attempt
}

// NewHTTPSubmitter creates a submitter with default retry settings
func NewHTTPSubmitter(url string, timeout time.Duration, attempts int) *HTTPSubmitter {
	return &HTTPSubmitter{
		URL:         url,
		Client:      http.DefaultClient,
		Timeout:     timeout,
		MaxAttempts: attempts,
		Backoff:     500 * time.Millisecond,
	}
}

// relayResponse mirrors the relay's JSON replies
type relayResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Errors Errors `json:"errors,omitempty"`
}

// Submit retries network errors, 5xx replies and 409 (an earlier attempt of
// the same submission is still being delivered) up to MaxAttempts. Any other
// 4xx reply is returned at once wrapped in ErrRejected.
func (h *HTTPSubmitter) Submit(ctx context.Context, s Submission) error {
	body, err := json.Marshal(s.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	attempts := max(h.MaxAttempts, 1)
	backoff := h.Backoff
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = h.post(ctx, s.ID, body)
		if lastErr == nil || errors.Is(lastErr, ErrRejected) {
			return lastErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("contact: attempt %d/%d for %s failed: %v", attempt, attempts, s.ID, lastErr)
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("delivery failed after %d attempts: %w", attempts, lastErr)
}

func (h *HTTPSubmitter) post(ctx context.Context, id string, body []byte) error {
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", id)

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	var reply relayResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(data, &reply)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("submission %s still in flight", id)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		msg := reply.Error
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	default:
		return fmt.Errorf("relay returned %s", resp.Status)
	}
}

// MailSubmitter sends submissions straight through a mailer
type MailSubmitter struct {
	Mailer mail.Mailer
}

func (m MailSubmitter) Submit(ctx context.Context, s Submission) error {
	msg := mail.ContactMessage(mail.Contact{
		ID:      s.ID,
		Name:    s.Fields.Name,
		Email:   s.Fields.Email,
		Subject: s.Fields.Subject,
		Body:    s.Fields.Message,
	})
	if err := m.Mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact mail: %w", err)
	}
	return nil
}
