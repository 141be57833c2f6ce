package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{APIKey: "   "})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientAppliesDefaults(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{APIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.Model())
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestAnalyzeLayoutSendsPromptAndImage(t *testing.T) {
	t.Parallel()

	var captured generateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"- Use Inter 56px\n"},{"text":"- Widen gutters"}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: "secret", Model: "gemini-test", BaseURL: srv.URL + "/v1beta/"})
	require.NoError(t, err)

	text, err := client.AnalyzeLayout(context.Background(), InlineImage{Data: "QUJD"})
	require.NoError(t, err)
	assert.Equal(t, "- Use Inter 56px\n- Widen gutters", text)

	require.Len(t, captured.Contents, 1)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	assert.Equal(t, "QUJD", parts[0].InlineData.Data)
	assert.Equal(t, LayoutPrompt, parts[1].Text)
}

func TestAnalyzeLayoutWithoutCandidatesReturnsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"OTHER"}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := client.AnalyzeLayout(context.Background(), InlineImage{Data: "QUJD"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestAnalyzeLayoutReportsStatusErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.AnalyzeLayout(context.Background(), InlineImage{Data: "QUJD"})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "quota exceeded")
}

func TestAnalyzeLayoutRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.AnalyzeLayout(context.Background(), InlineImage{Data: "QUJD"})
	assert.ErrorContains(t, err, "decode response")
}

func TestAnalyzeLayoutRequiresPayload(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{APIKey: "k"})
	require.NoError(t, err)
	_, err = client.AnalyzeLayout(context.Background(), InlineImage{})
	assert.Error(t, err)
}
