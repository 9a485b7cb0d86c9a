package presets

import (
	"embed"
)

// ConfigFiles embeds all YAML preset files from the config subdirectory
//
//go:embed all:config
var ConfigFiles embed.FS
