package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/pdfplatform/pdfplat-go/config"
	apperrors "github.com/pdfplatform/pdfplat-go/internal/errors"
	"github.com/pdfplatform/pdfplat-go/internal/notify"
)

// staticTokens is a fixed TokenSource for tests.
type staticTokens struct {
	token *oauth2.Token
}

func (s staticTokens) Token() *oauth2.Token { return s.token }

// noticeRecorder captures emitted notices.
type noticeRecorder struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (r *noticeRecorder) Notify(_ context.Context, notice notify.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
	return nil
}

func (r *noticeRecorder) all() []notify.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notice(nil), r.notices...)
}

// newTestClient spins up a server for handler and a client pointed at it.
func newTestClient(t *testing.T, token string, handler http.Handler) (*Client, *noticeRecorder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	recorder := &noticeRecorder{}
	var tokens TokenSource = staticTokens{}
	if token != "" {
		tokens = staticTokens{token: &oauth2.Token{AccessToken: token, TokenType: "bearer"}}
	}

	client, err := NewClient(Options{
		Config:   config.APIConfig{BaseURL: server.URL, BasePath: "/api/v1", Timeout: 5 * time.Second},
		Tokens:   tokens,
		Notifier: recorder,
	})
	require.NoError(t, err)
	return client, recorder
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{Config: config.APIConfig{BaseURL: "   "}})
	require.Error(t, err)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, "tok-123", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	_, err := client.MyMembership(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var sawAuth bool
	client, _ := newTestClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))

	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuth, "unauthenticated requests must not carry an Authorization header")
}

func TestClient_SetsRequestID(t *testing.T) {
	ids := map[string]bool{}
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte(`[]`))
	}))

	for i := 0; i < 3; i++ {
		_, err := client.ListCategories(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, ids, 3, "every request should carry a distinct X-Request-ID")
	assert.NotContains(t, ids, "")
}

func TestClient_ErrorMappingByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		check    func(error) bool
		wantMsg  string
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "401 with detail",
			status:   401,
			body:     `{"detail": "Could not validate credentials"}`,
			check:    apperrors.IsUnauthorized,
			wantMsg:  "Could not validate credentials",
			wantCode: apperrors.ErrCodeUnauthorized,
		},
		{
			name:     "403 quota",
			status:   403,
			body:     `{"detail": "Download quota exceeded"}`,
			check:    apperrors.IsForbidden,
			wantMsg:  "Download quota exceeded",
			wantCode: apperrors.ErrCodeForbidden,
		},
		{
			name:     "404 without body",
			status:   404,
			body:     ``,
			check:    apperrors.IsNotFound,
			wantMsg:  "Not Found",
			wantCode: apperrors.ErrCodeNotFound,
		},
		{
			name:     "422 validation list falls back to status text",
			status:   422,
			body:     `{"detail": [{"loc": ["body", "title"], "msg": "field required"}]}`,
			check:    apperrors.IsValidation,
			wantMsg:  http.StatusText(422),
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "500 generic",
			status:   500,
			body:     `{"detail": "boom"}`,
			check:    apperrors.IsServer,
			wantMsg:  "boom",
			wantCode: apperrors.ErrCodeServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, recorder := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.GetDocument(context.Background(), 1)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			assert.Equal(t, tt.status, apperrors.GetHTTPStatus(err))

			notices := recorder.all()
			require.Len(t, notices, 1, "exactly one notice per failed call")
			assert.Equal(t, notify.SeverityError, notices[0].Severity)
			assert.Equal(t, tt.wantMsg, notices[0].Message)
		})
	}
}

func TestClient_TransportFailureEmitsNotice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection refused

	recorder := &noticeRecorder{}
	client, err := NewClient(Options{
		Config:   config.APIConfig{BaseURL: server.URL, BasePath: "/api/v1", Timeout: time.Second},
		Notifier: recorder,
	})
	require.NoError(t, err)

	_, err = client.ListCategories(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
	require.Len(t, recorder.all(), 1)
}

func TestClient_SuccessEmitsNoNotice(t *testing.T) {
	client, recorder := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "type": "free", "download_quota": 5, "download_used": 0}`))
	}))

	membership, err := client.MyMembership(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "free", membership.Type)
	assert.Empty(t, recorder.all())
}

func TestClient_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListCategories(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}
