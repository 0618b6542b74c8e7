package gigasheet

// config.go houses the logic for loading and resolving Gigasheet profiles
// from ~/.gigasheet.toml or environment variables.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultAPIURL = "https://api.gigasheet.com"
	defaultAppURL = "https://app.gigasheet.com"

	apiKeyEnv = "GIGASHEET_API_KEY"
)

// Profile holds a fully-resolved configuration ready for use by the client.
type Profile struct {
	APIKey string
	APIURL string // e.g. https://api.gigasheet.com
	AppURL string // e.g. https://app.gigasheet.com, used for sheet links
}

// rawProfile mirrors the TOML structure on disk.
type rawProfile struct {
	APIKey string `toml:"api_key"`
	APIURL string `toml:"api_url"`
	AppURL string `toml:"app_url"`
	Active bool   `toml:"active"`
}

type config map[string]rawProfile

// readConfigFile loads ~/.gigasheet.toml, returning an empty config if the
// file does not exist.
func readConfigFile() (config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot locate homedir: %w", err)
	}
	path := filepath.Join(home, ".gigasheet.toml")
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config{}, nil // silent absence is fine
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// GetProfile resolves a profile by name. Pass an empty string to follow the
// default precedence:
//
//  1. GIGASHEET_PROFILE env var
//  2. first profile in the file with active = true
//
// Env vars override file values either way, so a bare GIGASHEET_API_KEY with
// no config file at all is enough to get a working profile.
func GetProfile(name string) (Profile, error) {
	cfg, err := readConfigFile()
	if err != nil {
		return Profile{}, err
	}

	// 1. explicit argument overrides everything
	if name == "" {
		name = os.Getenv("GIGASHEET_PROFILE")
	}

	// 2. look for `active = true` if still unspecified
	if name == "" {
		for n, p := range cfg {
			if p.Active {
				name = n
				break
			}
		}
	}

	// 3. verify existence
	raw, ok := cfg[name]
	if name != "" && !ok {
		return Profile{}, fmt.Errorf("profile %q not found in ~/.gigasheet.toml", name)
	}

	// 4. env-vars override file values
	apiKey := firstNonEmpty(os.Getenv(apiKeyEnv), raw.APIKey)
	apiURL := firstNonEmpty(os.Getenv("GIGASHEET_API_URL"), raw.APIURL, defaultAPIURL)
	appURL := firstNonEmpty(os.Getenv("GIGASHEET_APP_URL"), raw.AppURL, defaultAppURL)

	if apiKey == "" {
		return Profile{}, fmt.Errorf("no API key, provide in ClientOptions or set env %s", apiKeyEnv)
	}

	return Profile{
		APIKey: apiKey,
		APIURL: apiURL,
		AppURL: appURL,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
