// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/nowplaying/internal/models"
	"github.com/desertthunder/nowplaying/internal/repositories"
	"github.com/desertthunder/nowplaying/internal/shared"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// RecordedRequest is what [StubProvider] keeps from each inbound request.
type RecordedRequest struct {
	Method string
	Header http.Header
	Form   url.Values
}

// StubProvider is an httptest server standing in for the provider's token and currently-playing endpoints.
//
// It records every request so tests can assert on call counts and headers.
type StubProvider struct {
	Server *httptest.Server

	mu              sync.Mutex
	tokenStatus     int
	tokenBody       string
	playingStatus   int
	playingBody     string
	tokenRequests   []RecordedRequest
	playingRequests []RecordedRequest
}

// NewStubProvider starts a stub that answers the token endpoint with a valid grant
// and currently-playing with 204. The server is closed on test cleanup.
func NewStubProvider(t *testing.T) *StubProvider {
	t.Helper()

	s := &StubProvider{
		tokenStatus:   http.StatusOK,
		tokenBody:     `{"access_token":"AT","token_type":"Bearer","refresh_token":"RT","expires_in":3600,"scope":"user-read-currently-playing"}`,
		playingStatus: http.StatusNoContent,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", s.serveToken)
	mux.HandleFunc("/v1/me/player/currently-playing", s.servePlaying)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Server.Close)

	return s
}

// Provider returns endpoints pointing at the stub.
func (s *StubProvider) Provider() shared.ProviderConfig {
	return shared.ProviderConfig{
		AuthURL:  s.Server.URL + "/authorize",
		TokenURL: s.Server.URL + "/api/token",
		APIURL:   s.Server.URL + "/v1",
	}
}

// SetToken sets the token endpoint's status and JSON body.
func (s *StubProvider) SetToken(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenStatus, s.tokenBody = status, body
}

// SetPlaying sets the currently-playing endpoint's status and body.
func (s *StubProvider) SetPlaying(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playingStatus, s.playingBody = status, body
}

// TokenCalls returns the number of requests received by the token endpoint.
func (s *StubProvider) TokenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokenRequests)
}

// PlayingCalls returns the number of requests received by the currently-playing endpoint.
func (s *StubProvider) PlayingCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.playingRequests)
}

// LastTokenRequest returns the most recent token request. Fails the test if there is none.
func (s *StubProvider) LastTokenRequest(t *testing.T) RecordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tokenRequests) == 0 {
		t.Fatal("expected at least one token request")
	}
	return s.tokenRequests[len(s.tokenRequests)-1]
}

// LastPlayingRequest returns the most recent currently-playing request. Fails the test if there is none.
func (s *StubProvider) LastPlayingRequest(t *testing.T) RecordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.playingRequests) == 0 {
		t.Fatal("expected at least one currently-playing request")
	}
	return s.playingRequests[len(s.playingRequests)-1]
}

func (s *StubProvider) serveToken(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	s.mu.Lock()
	s.tokenRequests = append(s.tokenRequests, RecordedRequest{Method: r.Method, Header: r.Header.Clone(), Form: r.PostForm})
	status, body := s.tokenStatus, s.tokenBody
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func (s *StubProvider) servePlaying(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.playingRequests = append(s.playingRequests, RecordedRequest{Method: r.Method, Header: r.Header.Clone()})
	status, body := s.playingStatus, s.playingBody
	s.mu.Unlock()

	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// FakeClock is a settable time source.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// CountingStore wraps [repositories.MemoryTokenRepository] and counts reads and writes.
type CountingStore struct {
	repositories.MemoryTokenRepository

	mu     sync.Mutex
	reads  int
	writes int
}

func (c *CountingStore) Read() models.TokenRecord {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.MemoryTokenRepository.Read()
}

func (c *CountingStore) Write(record models.TokenRecord) {
	c.mu.Lock()
	c.writes++
	c.mu.Unlock()
	c.MemoryTokenRepository.Write(record)
}

func (c *CountingStore) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

func (c *CountingStore) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}
