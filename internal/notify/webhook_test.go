package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookClient_Notify(t *testing.T) {
	var (
		got       Event
		signature string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		signature = r.Header.Get(SignatureHeader)
		assert.Equal(t, Sign("s3cret", body), signature)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, "s3cret", time.Second)
	ev := Event{Type: EventLeadCreated, ID: "lead-1", Summary: "Awa Diop", OccurredAt: time.Now().UTC()}

	require.NoError(t, c.Notify(context.Background(), ev))
	assert.Equal(t, EventLeadCreated, got.Type)
	assert.Equal(t, "lead-1", got.ID)
	assert.NotEmpty(t, signature)
}

func TestWebhookClient_NonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, "", time.Second)
	err := c.Notify(context.Background(), Event{Type: EventLeadCreated})
	assert.ErrorContains(t, err, "non-2xx status: 502")
}

func TestWebhookClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, "", 50*time.Millisecond)
	err := c.Notify(context.Background(), Event{Type: EventLeadCreated})
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Notify(context.Background(), Event{}))
}
