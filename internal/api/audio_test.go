package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAudioSpeechFormats(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/audio/speech", map[string]any{
		"model": "tts-1", "input": "hello", "voice": "alloy",
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "audio/mp3", rr.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("ID3")))

	rr = doJSON(router, http.MethodPost, "/v1/audio/speech", map[string]any{
		"model": "tts-1", "input": "hello", "voice": "alloy", "response_format": "wav",
	}, nil)
	require.Equal(t, "audio/wav", rr.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("RIFF")))
}

func TestAudioTranscriptionFormats(t *testing.T) {
	_, router := newTestServer(t)

	rr := doMultipart(router, "/v1/audio/transcriptions", "file", "clip.mp3", []byte("fake"), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, decodeBody(t, rr)["text"], "mock transcription")

	rr = doMultipart(router, "/v1/audio/transcriptions", "file", "clip.mp3", []byte("fake"),
		map[string]string{"response_format": "verbose_json", "language": "de"})
	body := decodeBody(t, rr)
	require.Equal(t, "de", body["language"])
	require.NotEmpty(t, body["segments"].([]any))

	rr = doMultipart(router, "/v1/audio/transcriptions", "file", "clip.mp3", []byte("fake"),
		map[string]string{"response_format": "srt"})
	require.True(t, strings.HasPrefix(rr.Body.String(), "1\n00:00:00,000"))

	rr = doMultipart(router, "/v1/audio/transcriptions", "file", "clip.mp3", []byte("fake"),
		map[string]string{"response_format": "vtt"})
	require.True(t, strings.HasPrefix(rr.Body.String(), "WEBVTT"))
}

func TestAudioTranslationOmitsLanguage(t *testing.T) {
	_, router := newTestServer(t)

	rr := doMultipart(router, "/v1/audio/translations", "file", "clip.mp3", []byte("fake"),
		map[string]string{"response_format": "verbose_json"})
	body := decodeBody(t, rr)
	require.NotContains(t, body, "language")
	require.Contains(t, body["text"], "translation to English")
}
