// Package levels embeds the bundled Tiled maps and their tilesets.
package levels

import "embed"

//go:embed *.tmx *.png
var FS embed.FS

// Dir is the directory to pass to leveldata.LoadAllLevels for FS.
const Dir = "."
