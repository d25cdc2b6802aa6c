package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bemgestar/bemgestar/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// newTestClient spins up an httptest server and a client pointed at it,
// counting every request that actually reaches the server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL+"/api", 5*time.Second, testLogger()), &hits
}

func requireValidation(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, IsKind(err, KindValidation), "expected validation error, got %v", err)
	require.Equal(t, message, UserMessage(err))
}

func TestAuthenticatedCalls_MissingToken_NoRequestIssued(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	calls := map[string]func() error{
		"MonthSchedule":  func() error { _, err := c.MonthSchedule(ctx, "", "2025-03"); return err },
		"DaySchedule":    func() error { _, err := c.DaySchedule(ctx, "", "2025-03-08"); return err },
		"CreateSchedule": func() error { _, err := c.CreateSchedule(ctx, "", ScheduleInput{}); return err },
		"DeleteSchedule": func() error { _, err := c.DeleteSchedule(ctx, "", "doc1"); return err },
		"Lists":          func() error { _, err := c.Lists(ctx, ""); return err },
		"CreateList":     func() error { _, err := c.CreateList(ctx, "", "enxoval"); return err },
		"DeleteList":     func() error { _, err := c.DeleteList(ctx, "", "doc1"); return err },
		"Topics":         func() error { _, err := c.Topics(ctx, "", "doc1"); return err },
		"Posts":          func() error { _, err := c.Posts(ctx, ""); return err },
		"Post":           func() error { _, err := c.Post(ctx, "", "doc1"); return err },
		"Profile":        func() error { _, err := c.Profile(ctx, ""); return err },
		"DeleteAccount":  func() error { _, err := c.DeleteAccount(ctx, ""); return err },
		"ChildbirthPlan": func() error { _, err := c.ChildbirthPlan(ctx, ""); return err },
		"PlanPDF":        func() error { _, err := c.PlanPDF(ctx, ""); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			requireValidation(t, call(), MsgNoToken)
		})
	}
	require.Equal(t, int64(0), hits.Load(), "no network call may be made without a token")
}

func TestDo_SetsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	})

	_, err := c.Lists(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, "Bearer t1", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL+"/api", time.Second, testLogger())
	_, err := c.Lists(context.Background(), "t1")

	require.True(t, IsKind(err, KindNetwork))
	require.Equal(t, MsgConnection, UserMessage(err))
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"top-level message", `{"message":"Credenciais inválidas"}`, "Credenciais inválidas"},
		{"nested error message", `{"error":{"message":"Não autorizado"}}`, "Não autorizado"},
		{"json without message", `{"status":400}`, "fallback"},
		{"plain text", `Lista deletada`, "Lista deletada"},
		{"empty body", ``, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, extractMessage([]byte(tt.raw), "fallback"))
		})
	}
}

func TestDecodeList_Normalization(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	require.Len(t, decodeList[item]([]byte(`[{"name":"a"},{"name":"b"}]`)), 2)
	require.Equal(t, []item{{Name: "a"}}, decodeList[item]([]byte(`{"data":[{"name":"a"}]}`)))

	// Non-array shapes always collapse to an empty slice, never nil.
	for _, raw := range []string{`{"oops":true}`, `"texto"`, `42`, `null`, ``} {
		got := decodeList[item]([]byte(raw))
		require.NotNil(t, got, "input %q", raw)
		require.Empty(t, got, "input %q", raw)
	}
}

func TestUserMessage_UnknownError(t *testing.T) {
	require.Equal(t, MsgConnection, UserMessage(context.Canceled))
}

func TestAbsoluteMediaURL(t *testing.T) {
	c := New("https://api.example.org/api", time.Second, testLogger())

	require.Equal(t, "https://api.example.org/uploads/a.jpg", c.absoluteMediaURL("/uploads/a.jpg"))
	require.Equal(t, "https://api.example.org/uploads/a.jpg", c.absoluteMediaURL("uploads/a.jpg"))
	require.Equal(t, "https://cdn.example.org/a.jpg", c.absoluteMediaURL("https://cdn.example.org/a.jpg"))
	require.Equal(t, "", c.absoluteMediaURL(""))
}
