package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		Log:        zap.NewNop(),
		HTTPClient: &http.Client{Timeout: time.Second},
		BaseURL:    baseURL,
		Token:      "test-token",
		Channel:    "mongdang_pencil",
	}
}

func TestFetchMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "mongdang_pencil", r.URL.Query().Get("channel"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		// 乱序 + 空文本，客户端要排好序并丢掉空消息
		_, _ = w.Write([]byte(`[
			{"id": 102, "date": 1756104000, "text": "part 2"},
			{"id": 103, "date": 1756104100, "text": ""},
			{"id": 101, "date": 1756104000, "text": "part 1"}
		]`))
	}))
	defer srv.Close()

	msgs, err := newTestClient(srv.URL).FetchMessages(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(101), msgs[0].ID)
	assert.Equal(t, int64(102), msgs[1].ID)
	assert.Equal(t, time.Unix(1756104000, 0), msgs[0].Timestamp)
}

func TestFetchMessages_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchMessages(context.Background(), 10)
	assert.Error(t, err)
}

func TestFetchMessages_InvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchMessages(context.Background(), 10)
	assert.Error(t, err)
}
