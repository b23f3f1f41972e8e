package config

import "github.com/yungtweek/mockai/internal/logger"

// ApplyPresetOverrides adjusts timing knobs for common local-testing setups.
// Explicit env vars are loaded first, so a preset intentionally wins over them;
// use PRESET=none when tuning knobs individually.
func ApplyPresetOverrides(cfg *Config) {
	logger.Log.Infow("[config] apply preset overrides", "preset", cfg.Preset)
	switch cfg.Preset {
	case "fast":
		// CI / unit-test friendly: no artificial latency, near-instant streams.
		cfg.ResponseDelayMs = 0
		cfg.StreamIntervalMs = 5
		cfg.BatchCompletionDelayMs = 250

	case "slow":
		// Exaggerated latency for exercising client timeouts and spinners.
		cfg.ResponseDelayMs = 500
		cfg.StreamIntervalMs = 250
		cfg.BatchCompletionDelayMs = 15000
	}
}
