package transcribe_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lecture-pipeline/pkg/transcribe"
)

func TestTranscribeMissingAPIKey(t *testing.T) {
	client := transcribe.NewOpenAIClient(transcribe.Config{})

	_, err := client.Transcribe(context.Background(), transcribe.Input{Data: []byte("abc")})
	if !errors.Is(err, transcribe.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestTranscribeInlineBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model field = %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file part: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "  lecture transcript  "}`))
	}))
	defer srv.Close()

	client := transcribe.NewOpenAIClient(transcribe.Config{APIKey: "test-key", Endpoint: srv.URL})

	text, err := client.Transcribe(context.Background(), transcribe.Input{
		Data:     []byte("fake-audio"),
		Filename: "lecture.mp3",
		Mime:     "audio/mpeg",
	})
	if err != nil {
		t.Fatalf("Transcribe() error: %v", err)
	}
	if text != "lecture transcript" {
		t.Errorf("Transcribe() = %q, want trimmed transcript", text)
	}
}

func TestTranscribeUnsupportedMime(t *testing.T) {
	client := transcribe.NewOpenAIClient(transcribe.Config{APIKey: "test-key"})

	_, err := client.Transcribe(context.Background(), transcribe.Input{
		Data: []byte("fake"),
		Mime: "video/avi",
	})
	if !errors.Is(err, transcribe.ErrUnsupportedMime) {
		t.Fatalf("expected ErrUnsupportedMime, got %v", err)
	}
}

func TestTranscribeNoAudio(t *testing.T) {
	client := transcribe.NewOpenAIClient(transcribe.Config{APIKey: "test-key"})

	_, err := client.Transcribe(context.Background(), transcribe.Input{})
	if !errors.Is(err, transcribe.ErrNoAudio) {
		t.Fatalf("expected ErrNoAudio, got %v", err)
	}
}

func TestTranscribeFetchesURL(t *testing.T) {
	audioSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote-audio-bytes"))
	}))
	defer audioSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		if header.Size == 0 {
			t.Errorf("uploaded file is empty")
		}
		_, _ = w.Write([]byte(`{"text": "from url"}`))
	}))
	defer apiSrv.Close()

	client := transcribe.NewOpenAIClient(transcribe.Config{APIKey: "test-key", Endpoint: apiSrv.URL})

	text, err := client.Transcribe(context.Background(), transcribe.Input{URL: audioSrv.URL + "/recordings/lec1.mp3"})
	if err != nil {
		t.Fatalf("Transcribe() error: %v", err)
	}
	if text != "from url" {
		t.Errorf("Transcribe() = %q, want %q", text, "from url")
	}
}

func TestTranscribeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "bad audio"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := transcribe.NewOpenAIClient(transcribe.Config{APIKey: "test-key", Endpoint: srv.URL})

	_, err := client.Transcribe(context.Background(), transcribe.Input{Data: []byte("x")})
	if err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}
