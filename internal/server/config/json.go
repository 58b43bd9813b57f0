package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/privachat/internal/flagx"
	"github.com/dmitrijs2005/privachat/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration
// so both "15m" and integer nanoseconds are accepted. Keys missing from the
// file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	RelayPersistTimeout          timex.Duration `json:"relay_persist_timeout"`
	RelayBufferSize              int            `json:"relay_buffer_size"`
	EnforceContactGate           *bool          `json:"enforce_contact_gate"`
}

// parseJson loads the file named by -c/-config into config. Without the
// flag nothing happens. An unreadable or malformed file panics: this only
// runs at startup.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}
	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.RelayPersistTimeout.Duration != 0 {
		config.RelayPersistTimeout = c.RelayPersistTimeout.Duration
	}
	if c.RelayBufferSize != 0 {
		config.RelayBufferSize = c.RelayBufferSize
	}
	if c.EnforceContactGate != nil {
		config.EnforceContactGate = *c.EnforceContactGate
	}
}
