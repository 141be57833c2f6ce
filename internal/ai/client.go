package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultModel   = "gemini-3-flash-preview"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 90 * time.Second

	// maxErrorBody bounds how much of a failed response is kept for the error.
	maxErrorBody = 2048
)

// LayoutPrompt is the instruction sent alongside every screenshot.
const LayoutPrompt = "Analyze this layout screenshot. Suggest specific typography (font family, size) and layout changes to improve visual hierarchy and professional aesthetics. Return as a short bulleted list."

// Config describes how the Gemini client should be initialised.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client offers a thin wrapper around the Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// InlineImage is an image payload sent inline with a request.
type InlineImage struct {
	MIMEType string
	// Data is the base64 payload without any data-URL prefix.
	Data string
}

// NewClient builds a Client that can ask Gemini for layout feedback.
func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("ai: api key must not be empty")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// Model returns the model the client targets.
func (c *Client) Model() string {
	return c.model
}

// AnalyzeLayout sends the screenshot with LayoutPrompt and returns the text of
// the first candidate verbatim. A response without candidates yields "".
func (c *Client) AnalyzeLayout(ctx context.Context, image InlineImage) (string, error) {
	if strings.TrimSpace(image.Data) == "" {
		return "", errors.New("ai: image payload must not be empty")
	}
	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	request := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MIMEType: mimeType, Data: image.Data}},
				{Text: LayoutPrompt},
			},
		}},
	}

	response, err := c.generateContent(ctx, request)
	if err != nil {
		return "", err
	}
	return response.text(), nil
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		builder.WriteString(p.Text)
	}
	return builder.String()
}

func (c *Client) generateContent(ctx context.Context, request generateContentRequest) (generateContentResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return generateContentResponse{}, fmt.Errorf("ai: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return generateContentResponse{}, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return generateContentResponse{}, fmt.Errorf("ai: call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return generateContentResponse{}, &StatusError{Status: resp.Status, Code: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return generateContentResponse{}, fmt.Errorf("ai: decode response: %w", err)
	}
	return decoded, nil
}

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Status string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ai: gemini returned status %s", e.Status)
	}
	return fmt.Sprintf("ai: gemini returned status %s: %s", e.Status, e.Body)
}
