package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		OnlineCheckInterval: 3 * time.Second,
		LocalDBPath:         "privachat.db",
		HistoryPageSize:     50,
	}, c)
}

func TestExportDir(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit", Config{ExportBaseDir: "/srv/out", LocalDBPath: "/var/lib/pc.db"}, "/srv/out"},
		{"next to database", Config{LocalDBPath: filepath.Join("data", "pc.db")}, "data"},
		{"working directory", Config{LocalDBPath: "pc.db"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ExportDir())
		})
	}
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "file:1",
		"history_page_size":    20,
	})
	os.Args = []string{"privachat", "-c", path, "-a", "flag:2"}

	cfg := LoadConfig()

	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr, "flags win over the file")
	assert.Equal(t, 20, cfg.HistoryPageSize)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
