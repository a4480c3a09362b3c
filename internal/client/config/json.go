package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sporttogether/internal/flagx"
	"github.com/dmitrijs2005/sporttogether/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL           string          `json:"server_url"`
	CacheDSN            string          `json:"cache_dsn"`
	OutputPath          string          `json:"output_path"`
	IconBaseURL         string          `json:"icon_base_url"`
	LogLevel            string          `json:"log_level"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with the keys present in the JSON file chosen by
// flagx.ConfigPath. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.CacheDSN, jc.CacheDSN)
	setString(&cfg.OutputPath, jc.OutputPath)
	setString(&cfg.IconBaseURL, jc.IconBaseURL)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
