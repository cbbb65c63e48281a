// Package templates holds the packaged stubs and the settings template.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed stubs/*.stub stubs/views/*.stub config/*.php
var packaged embed.FS

// SettingsTemplate is the path of the settings template inside FS.
const SettingsTemplate = "config/module-generator.php"

// FS returns the packaged stub tree. Stub files live under stubs/, the
// settings template under config/.
func FS() fs.FS {
	return packaged
}
