package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	CatalogURL   string
	CatalogToken string
	Tournament   string
	Output       string
	Verbose      bool
	AssumeYes    bool
	ConfigDir    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("PINADMIN_SERVER", "http://localhost:8080"),
		CatalogURL:   getEnvOrDefault("PINADMIN_CATALOG", "https://opdb.org"),
		CatalogToken: os.Getenv("PINADMIN_CATALOG_TOKEN"),
		Tournament:   os.Getenv("PINADMIN_TOURNAMENT"),
		Output:       "text",
		Verbose:      false,
		ConfigDir:    getEnvOrDefault("PINADMIN_CONFIG_DIR", defaultConfigDir()),
	}
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pinadmin"
	}
	return filepath.Join(home, ".pinadmin")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
