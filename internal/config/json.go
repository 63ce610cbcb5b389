package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gremioaf/portal/internal/flagx"
	"github.com/gremioaf/portal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "8h"
// or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN          string         `json:"database_dsn"`
	SessionSecret        string         `json:"session_secret"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
}

// parseJson overlays Config with values loaded from a JSON file whose path is
// given via the -c or -config flags. If no path is provided, nothing is
// loaded. Empty JSON fields leave the current value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionTokenValidity.Duration != 0 {
		cfg.SessionTokenValidity = time.Duration(jc.SessionTokenValidity.Duration)
	}
	if jc.S3RootUser != "" {
		cfg.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		cfg.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
