// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/swab-vote/cliparse"
	"github.com/danielhkuo/swab-vote/db"
)

const (
	// TestSigningKey is 32 bytes, the same size main generates
	TestSigningKey    = "test-signing-key-0123456789abcde"
	TestAdminPassword = "password123"
)

// SetupTestDB opens an in-memory SQLite audit database with the schema created
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration. MembersURL is left
// empty; point it at NewMemberServer when a test logs members in.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8443,
		LookupTimeout: time.Second,
		TokenLifespan: 30 * time.Second,
		SigningKey:    TestSigningKey,
		AdminPassword: TestAdminPassword,
		DatabaseType:  db.TypeSQLite,
		AllowedOrigin: "*",
	}
}

// Clock is a settable clock for token lifespan tests
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Member is a record served by NewMemberServer. Age and Region are omitted
// from the response when nil.
type Member struct {
	Name   string
	Number string
	Age    any
	Region any
}

// NewMemberServer serves member records at /sawb/member/<number> the way the
// real record service does. It returns the base URL to configure as
// MembersURL.
func NewMemberServer(t *testing.T, records ...Member) string {
	t.Helper()

	byNumber := make(map[string]Member, len(records))
	for _, m := range records {
		byNumber[m.Number] = m
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		number, ok := strings.CutPrefix(r.URL.Path, "/sawb/member/")
		m, found := byNumber[number]
		if !ok || !found {
			http.NotFound(w, r)
			return
		}

		member := map[string]any{"name": m.Name, "number": m.Number}
		if m.Age != nil {
			member["age"] = m.Age
		}
		if m.Region != nil {
			member["region"] = m.Region
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"member": member})
	}))
	t.Cleanup(srv.Close)

	return srv.URL + "/sawb/member/"
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Bearer returns an Authorization header map for MakeRequest
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
