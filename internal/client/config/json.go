package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/privachat/internal/flagx"
	"github.com/dmitrijs2005/privachat/internal/timex"
)

// JsonConfig mirrors Config for decoding. Pointer and zero-value fields
// let parseJson tell absent keys from set ones.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LocalDBPath         string         `json:"local_db_path"`
	ExportBaseDir       *string        `json:"export_base_dir"`
	HistoryPageSize     int            `json:"history_page_size"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read and decode errors panic; this only runs at startup.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.ExportBaseDir != nil {
		cfg.ExportBaseDir = *jc.ExportBaseDir
	}
	if jc.HistoryPageSize > 0 {
		cfg.HistoryPageSize = jc.HistoryPageSize
	}
}
