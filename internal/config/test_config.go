package config

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Log.Level = "off"
	cfg.Render.Source = "man"
	return cfg
}
