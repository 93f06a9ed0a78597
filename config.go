package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	WebsiteURL      string
	Mac             bool
	EditMode        bool
	ExportDirectory string
	TrustedMarkup   bool
	Confirmations   bool
}

func defaultConfig() *Config {
	return &Config{
		WebsiteURL:    defaultURL,
		Mac:           true,
		EditMode:      true,
		Confirmations: true,
	}
}

// configPath returns $NODEDIT_CONFIG if set, otherwise ~/.nodeditrc.
func configPath() string {
	if p := os.Getenv("NODEDIT_CONFIG"); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".nodeditrc")
}

// loadConfig reads the rc file. A missing file yields the defaults.
func loadConfig() (*Config, error) {
	path := configPath()
	if path == "" {
		return defaultConfig(), nil
	}
	return loadConfigFrom(path)
}

func loadConfigFrom(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()
	config, err := parseConfig(file, homeDir)
	if err != nil {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}
	return config, nil
}

// parseConfig reads key = value lines. Unknown keys and malformed lines are
// skipped.
func parseConfig(r io.Reader, homeDir string) (*Config, error) {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "website_url", "websiteurl", "url":
			config.WebsiteURL = value
		case "os", "flavor":
			switch strings.ToLower(value) {
			case "mac", "macos", "darwin":
				config.Mac = true
			case "windows", "win", "powershell":
				config.Mac = false
			}
		case "edit_mode", "editmode":
			config.EditMode = parseBool(value, config.EditMode)
		case "export_directory", "exportdirectory", "exportdir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.ExportDirectory = value
		case "trusted_markup", "trustedmarkup":
			config.TrustedMarkup = parseBool(value, config.TrustedMarkup)
		case "confirmations", "confirm":
			config.Confirmations = parseBool(value, config.Confirmations)
		}
	}

	return config, scanner.Err()
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return fallback
}

func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
