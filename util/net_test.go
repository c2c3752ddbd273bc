package util

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostWithHeader(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"db_name":"NDTVProfit"}`, string(body))

		w.Write([]byte(`{"status":"success"}`))
	}))
	defer upstream.Close()

	res, err := PostWithHeader(context.Background(), upstream.Client(), upstream.URL,
		map[string]string{"Authorization": "Bearer tok"},
		map[string]string{"db_name": "NDTVProfit"})
	assert.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, `{"status":"success"}`, string(body))
}

func TestPostRaw(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// The payload must pass through byte for byte.
		assert.Equal(t, `{"user_id": "u1"}`, string(body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer upstream.Close()

	res, err := PostRaw(context.Background(), upstream.Client(), upstream.URL, nil, []byte(`{"user_id": "u1"}`))
	assert.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusAccepted, res.StatusCode)
}
