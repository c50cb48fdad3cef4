package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"user_id":1}`, string(body))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewHTTPClient()
	status, body, err := client.Post(context.Background(), server.URL, nil, []byte(`{"user_id":1}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPClient_PostCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPClient().Post(ctx, server.URL, nil, nil)
	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Post(gomock.Any(), "http://vip/api", gomock.Nil(), []byte("{}")).Return(http.StatusOK, nil, nil)

	client := NewHTTPClient()
	client.SetClient(mock)
	status, _, err := client.Post(context.Background(), "http://vip/api", nil, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}
