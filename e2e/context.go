package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	contactshandler "contacts/internal/contacts/handler"
	"contacts/internal/contacts/importer"
	"contacts/internal/contacts/query"
	"contacts/internal/contacts/service"
	countrystore "contacts/internal/contacts/store/country"
	personstore "contacts/internal/contacts/store/person"
	"contacts/internal/platform/health"
	httptransport "contacts/internal/transport/http"
)

// TestContext holds state between test steps.
type TestContext struct {
	BaseURL          string
	HTTPClient       *http.Client
	LastResponse     *http.Response
	LastResponseBody []byte

	server *httptest.Server
	saved  map[string]string
}

// NewTestContext targets BASE_URL when set, otherwise a fresh in-process server
// backed by empty in-memory stores.
func NewTestContext() *TestContext {
	tc := &TestContext{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		saved:      make(map[string]string),
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		tc.BaseURL = strings.TrimRight(baseURL, "/")
		return tc
	}
	tc.server = httptest.NewServer(newInProcessRouter())
	tc.BaseURL = tc.server.URL
	return tc
}

func newInProcessRouter() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := service.NewInMemoryTx()
	countries := service.NewCountryService(countrystore.NewInMemory(), service.WithTx(tx))
	persons := service.NewPersonService(personstore.NewInMemory(), countries, service.WithTx(tx))

	return httptransport.NewRouter(httptransport.RouterConfig{
		Logger:   log,
		Contacts: contactshandler.New(persons, countries, importer.New(countries), query.NewEngine(), log),
		Health:   health.New("e2e"),
	})
}

// Close stops the in-process server, if any.
func (tc *TestContext) Close() {
	if tc.server != nil {
		tc.server.Close()
	}
}

func (tc *TestContext) Save(alias, value string) { tc.saved[alias] = value }

func (tc *TestContext) Saved(alias string) (string, error) {
	v, ok := tc.saved[alias]
	if !ok {
		return "", fmt.Errorf("nothing saved as %q", alias)
	}
	return v, nil
}

func (tc *TestContext) POST(path string, body any) error {
	return tc.sendJSON(http.MethodPost, path, body)
}

func (tc *TestContext) PUT(path string, body any) error {
	return tc.sendJSON(http.MethodPut, path, body)
}

// POSTRaw sends body as-is with the given content type.
func (tc *TestContext) POSTRaw(path, contentType, body string) error {
	return tc.do(http.MethodPost, path, contentType, strings.NewReader(body))
}

func (tc *TestContext) GET(path string) error {
	return tc.do(http.MethodGet, path, "", nil)
}

func (tc *TestContext) DELETE(path string) error {
	return tc.do(http.MethodDelete, path, "", nil)
}

func (tc *TestContext) sendJSON(method, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return tc.do(method, path, "application/json", bytes.NewReader(data))
}

func (tc *TestContext) do(method, path, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(context.Background(), method, tc.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}

	tc.LastResponse = resp
	tc.LastResponseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// GetResponseField extracts a top-level field from the JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %s not found in response", field)
	}
	return value, nil
}

func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}

func (tc *TestContext) GetLastResponseBody() []byte {
	return tc.LastResponseBody
}
