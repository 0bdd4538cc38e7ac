// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package members

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single lookup when none is configured
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a member record response is read
const maxBodyBytes = 64 << 10

var (
	ErrMissingDetails = errors.New("membership name and number are required")
	ErrNotFound       = errors.New("member details not found")
	ErrMismatch       = errors.New("member details do not match records")
)

// Attempt is what a member submits when logging in
type Attempt struct {
	Name   string `json:"user_name"`
	Number string `json:"user_number"`
	Age    string `json:"user_age"`
	Region string `json:"user_region"`
}

// Complete reports whether the required fields were given
func (a Attempt) Complete() bool {
	return strings.TrimSpace(a.Name) != "" && strings.TrimSpace(a.Number) != ""
}

// Record is a member as held by the external record service. Age and Region
// are nil when the service does not hold them.
type Record struct {
	Name   string
	Number string
	Age    *string
	Region *string
}

// Matches compares an attempt against a record. Name and region ignore case;
// number and age must match exactly. Optional fields the record lacks are
// not compared.
func (a Attempt) Matches(r Record) bool {
	if !strings.EqualFold(r.Name, a.Name) {
		return false
	}
	if r.Number != a.Number {
		return false
	}
	if r.Age != nil && *r.Age != a.Age {
		return false
	}
	if r.Region != nil && !strings.EqualFold(*r.Region, a.Region) {
		return false
	}
	return true
}

// Verifier checks login details against member records
type Verifier interface {
	Verify(ctx context.Context, attempt Attempt) error
}

// Client looks member records up over HTTP
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type recordResponse struct {
	Member *struct {
		Name   json.RawMessage `json:"name"`
		Number json.RawMessage `json:"number"`
		Age    json.RawMessage `json:"age"`
		Region json.RawMessage `json:"region"`
	} `json:"member"`
}

// Lookup fetches the record for a membership number. Every failure,
// including an unreachable service or a 200 with an unusable body, is
// reported as ErrNotFound.
func (c *Client) Lookup(ctx context.Context, number string) (Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.PathEscape(number), nil)
	if err != nil {
		c.logger.Warn("member lookup request invalid", "error", err)
		return Record{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("member lookup unavailable", "error", err)
		return Record{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Info("member lookup returned non-OK", "status", resp.StatusCode)
		return Record{}, fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logger.Warn("member lookup body unreadable", "error", err)
		return Record{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var decoded recordResponse
	if err := json.Unmarshal(body, &decoded); err != nil || decoded.Member == nil {
		c.logger.Warn("member lookup body malformed", "error", err)
		return Record{}, fmt.Errorf("%w: malformed record", ErrNotFound)
	}

	record := Record{
		Name:   scalarText(decoded.Member.Name),
		Number: scalarText(decoded.Member.Number),
	}
	if present(decoded.Member.Age) {
		age := scalarText(decoded.Member.Age)
		record.Age = &age
	}
	if present(decoded.Member.Region) {
		region := scalarText(decoded.Member.Region)
		record.Region = &region
	}
	return record, nil
}

// Verify checks that the attempt is complete, that a record exists and that
// the record matches
func (c *Client) Verify(ctx context.Context, attempt Attempt) error {
	if !attempt.Complete() {
		return ErrMissingDetails
	}
	record, err := c.Lookup(ctx, attempt.Number)
	if err != nil {
		return err
	}
	if !attempt.Matches(record) {
		return ErrMismatch
	}
	return nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// scalarText renders a JSON scalar as text: strings are unquoted, numbers
// and booleans keep their literal form
func scalarText(raw json.RawMessage) string {
	if !present(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
