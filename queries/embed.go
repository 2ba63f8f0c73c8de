package queries

import (
	"embed"
)

// ConfigFiles embeds all YAML saved query definitions from the config subdirectory
//
//go:embed all:config
var ConfigFiles embed.FS
