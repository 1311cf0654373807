package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	defaultModel    = "whisper-1"
	defaultEndpoint = "https://api.openai.com/v1/audio/transcriptions"
	requestTimeout  = 10 * time.Minute
)

var allowedAudioMimes = map[string]struct{}{
	"audio/webm":  {},
	"audio/mpeg":  {},
	"audio/mp3":   {},
	"audio/mp4":   {},
	"audio/x-m4a": {},
	"audio/wav":   {},
	"audio/ogg":   {},
}

// OpenAIClient is a Transcriber backed by the OpenAI audio/transcriptions API.
type OpenAIClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

var _ Transcriber = (*OpenAIClient)(nil)

// NewOpenAIClient creates an OpenAI transcription client.
// A missing API key is not an error here; Transcribe reports it as
// ErrMissingAPIKey so callers can distinguish configuration failures.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &OpenAIClient{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Transcribe converts audio to text. URL inputs are fetched first; inline
// bytes are uploaded as-is. No retry policy: retrying is a caller decision.
func (c *OpenAIClient) Transcribe(ctx context.Context, input Input) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	data := input.Data
	filename := input.Filename

	if input.URL != "" {
		fetched, name, err := c.fetchURL(ctx, input.URL)
		if err != nil {
			return "", err
		}
		data = fetched
		filename = name
	}

	if len(data) == 0 {
		return "", ErrNoAudio
	}
	if filename == "" {
		filename = "audio"
	}

	if input.Mime != "" {
		if _, ok := allowedAudioMimes[strings.ToLower(input.Mime)]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedMime, input.Mime)
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("transcribe: write model field: %w", err)
	}

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("transcribe: create multipart file: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("transcribe: write audio data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("transcribe: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("transcribe: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe: call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("transcribe: API error %d: %s", resp.StatusCode, string(raw))
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("transcribe: decode response: %w", err)
	}

	return strings.TrimSpace(payload.Text), nil
}

func (c *OpenAIClient) fetchURL(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("transcribe: create fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("transcribe: fetch audio URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", fmt.Errorf("transcribe: fetch audio URL: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("transcribe: read audio body: %w", err)
	}

	name := "audio"
	if u, parseErr := url.Parse(rawURL); parseErr == nil && path.Base(u.Path) != "/" && path.Base(u.Path) != "." {
		name = path.Base(u.Path)
	}
	return data, name, nil
}
