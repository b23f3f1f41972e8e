package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port    int
	Profile string
	Preset  string // none|fast|slow (latency presets for local testing)

	// Request handling
	RequestSizeLimit int // max JSON body size in bytes
	ResponseDelayMs  int // default artificial delay applied by the delay gate

	// Completion behavior
	MockType         string // echo|random|fixed (default content selection mode)
	MockFilePath     string // optional canned-contents file (plain lines or yaml list)
	StreamIntervalMs int    // pacing between SSE frames

	// Lifecycle timing
	BatchCompletionDelayMs int // how long a batch stays running before auto-success
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvStr(k string, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func LoadConfig() Config {
	return Config{
		Port:    getEnvInt("SERVER_PORT", 5001),
		Profile: getEnvStr("PROFILE", "default"),
		Preset:  strings.ToLower(getEnvStr("PRESET", "none")),

		RequestSizeLimit: getEnvInt("REQUEST_SIZE_LIMIT_BYTES", 10*1024),
		ResponseDelayMs:  getEnvInt("RESPONSE_DELAY_MS", 0),

		MockType:         strings.ToLower(getEnvStr("MOCK_TYPE", "random")),
		MockFilePath:     getEnvStr("MOCK_FILE_PATH", ""),
		StreamIntervalMs: getEnvInt("STREAM_INTERVAL_MS", 100),

		BatchCompletionDelayMs: getEnvInt("BATCH_COMPLETION_DELAY_MS", 5000),
	}
}
