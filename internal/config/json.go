package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Geocoder struct {
		BaseURL       string   `json:"base_url"`
		UserAgent     string   `json:"user_agent"`
		ResultLimit   int      `json:"result_limit"`
		LookupTimeout Duration `json:"lookup_timeout"`
		MaxAttempts   int      `json:"max_attempts"`
		BackoffBase   Duration `json:"backoff_base"`
		RateLimit     float64  `json:"rate_limit"`
	} `json:"geocoder,omitempty"`

	CRM struct {
		BaseURL        string   `json:"base_url"`
		LoginURL       string   `json:"login_url"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
		TokenTTL       Duration `json:"token_ttl"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"crm,omitempty"`

	Cache struct {
		Backend    string   `json:"backend"`
		MaxEntries int      `json:"max_entries"`
		TTL        Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Storage struct {
		Tokens struct {
			Backend string `json:"backend"`
			DSN     string `json:"dsn"`
		} `json:"tokens,omitempty"`

		Redis struct {
			Addr      string `json:"addr"`
			Password  string `json:"password"`
			DB        int    `json:"db"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		CacheJanitorInterval Duration `json:"cache_janitor_interval"`
		TokenRefreshInterval Duration `json:"token_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Geocoder: Geocoder{
			BaseURL:       jsonCfg.Geocoder.BaseURL,
			UserAgent:     jsonCfg.Geocoder.UserAgent,
			ResultLimit:   jsonCfg.Geocoder.ResultLimit,
			LookupTimeout: time.Duration(jsonCfg.Geocoder.LookupTimeout),
			MaxAttempts:   jsonCfg.Geocoder.MaxAttempts,
			BackoffBase:   time.Duration(jsonCfg.Geocoder.BackoffBase),
			RateLimit:     jsonCfg.Geocoder.RateLimit,
		},
		CRM: CRM{
			BaseURL:        jsonCfg.CRM.BaseURL,
			LoginURL:       jsonCfg.CRM.LoginURL,
			Username:       jsonCfg.CRM.Username,
			Password:       jsonCfg.CRM.Password,
			TokenTTL:       time.Duration(jsonCfg.CRM.TokenTTL),
			RequestTimeout: time.Duration(jsonCfg.CRM.RequestTimeout),
		},
		Cache: Cache{
			Backend:    jsonCfg.Cache.Backend,
			MaxEntries: jsonCfg.Cache.MaxEntries,
			TTL:        time.Duration(jsonCfg.Cache.TTL),
		},
		Storage: Storage{
			Tokens: Tokens{
				Backend: jsonCfg.Storage.Tokens.Backend,
				DSN:     jsonCfg.Storage.Tokens.DSN,
			},
			Redis: Redis{
				Addr:      jsonCfg.Storage.Redis.Addr,
				Password:  jsonCfg.Storage.Redis.Password,
				DB:        jsonCfg.Storage.Redis.DB,
				KeyPrefix: jsonCfg.Storage.Redis.KeyPrefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			CacheJanitorInterval: time.Duration(jsonCfg.Workers.CacheJanitorInterval),
			TokenRefreshInterval: time.Duration(jsonCfg.Workers.TokenRefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
