package api

import (
	"encoding/binary"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	mockTranscriptionText = "This is a mock transcription of the audio file. The quick brown fox jumps over the lazy dog."
	mockTranslationText   = "This is a mock translation to English. The quick brown fox jumps over the lazy dog."
)

type speechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format"`
	Speed          float64 `json:"speed"`
}

func (s *Server) audioSpeech(c *gin.Context) {
	var req speechRequest
	_ = c.ShouldBindJSON(&req)

	format := req.ResponseFormat
	if format == "" {
		format = "mp3"
	}

	data := mockAudioData(format)
	contentType := "audio/mp3"
	if format != "mp3" {
		contentType = "audio/wav"
	}
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}

func (s *Server) audioTranscriptions(c *gin.Context) {
	s.audioTextResponse(c, mockTranscriptionText, "transcription")
}

func (s *Server) audioTranslations(c *gin.Context) {
	s.audioTextResponse(c, mockTranslationText, "translation")
}

// audioTextResponse renders the shared transcription/translation shapes for
// the json, verbose_json, srt and vtt formats.
func (s *Server) audioTextResponse(c *gin.Context, text, kind string) {
	format := c.PostForm("response_format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "verbose_json":
		language := c.PostForm("language")
		if language == "" {
			language = "en"
		}
		temperature := 0.0
		if v := c.PostForm("temperature"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				temperature = f
			}
		}
		body := gin.H{
			"text": text,
			"segments": []gin.H{{
				"id":                0,
				"seek":              0,
				"start":             0.0,
				"end":               4.0,
				"text":              "This is a mock " + kind,
				"tokens":            []int{50364, 1029, 338, 257, 3277, 12314},
				"temperature":       temperature,
				"avg_logprob":       -0.458,
				"compression_ratio": 1.275,
				"no_speech_prob":    0.1,
				"words": []gin.H{
					{"word": "This", "start": 0.0, "end": 0.3, "probability": 0.999},
					{"word": "is", "start": 0.3, "end": 0.5, "probability": 0.999},
					{"word": "a", "start": 0.5, "end": 0.6, "probability": 0.999},
					{"word": "mock", "start": 0.6, "end": 0.9, "probability": 0.999},
					{"word": kind, "start": 0.9, "end": 1.5, "probability": 0.999},
				},
			}},
		}
		if kind == "transcription" {
			body["language"] = language
		}
		c.JSON(http.StatusOK, body)

	case "srt":
		first := "This is a mock " + kind + " of the audio file."
		if kind == "translation" {
			first = "This is a mock translation to English."
		}
		c.String(http.StatusOK, "1\n00:00:00,000 --> 00:00:04,000\n"+first+
			"\n\n2\n00:00:04,000 --> 00:00:08,000\nThe quick brown fox jumps over the lazy dog.")

	case "vtt":
		first := "This is a mock " + kind + " of the audio file."
		if kind == "translation" {
			first = "This is a mock translation to English."
		}
		c.String(http.StatusOK, "WEBVTT\n\n00:00:00.000 --> 00:00:04.000\n"+first+
			"\n\n00:00:04.000 --> 00:00:08.000\nThe quick brown fox jumps over the lazy dog.")

	default:
		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}

// mockAudioData returns a tiny but structurally valid audio payload: a 16-bit
// mono PCM WAV of silence, or an MP3-looking blob with an ID3 header.
func mockAudioData(format string) []byte {
	if format == "mp3" {
		data := []byte("ID3\x04\x00\x00\x00\x00\x00\x00")
		frame := []byte{0xFF, 0xFB, 0x90, 0x00}
		for i := 0; i < 32; i++ {
			data = append(data, frame...)
		}
		return data
	}

	const samples = 1600 // 0.1s at 16kHz
	dataLen := samples * 2
	buf := make([]byte, 0, 44+dataLen)
	buf = append(buf, []byte("RIFF")...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+dataLen))
	buf = append(buf, []byte("WAVEfmt ")...)
	buf = binary.LittleEndian.AppendUint32(buf, 16) // PCM header size
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // PCM
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // mono
	buf = binary.LittleEndian.AppendUint32(buf, 16000)
	buf = binary.LittleEndian.AppendUint32(buf, 16000*2)
	buf = binary.LittleEndian.AppendUint16(buf, 2)
	buf = binary.LittleEndian.AppendUint16(buf, 16)
	buf = append(buf, []byte("data")...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(dataLen))
	return append(buf, make([]byte, dataLen)...)
}
