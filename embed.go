package adaptable

import (
	"embed"
)

//go:embed templates lang
var bundled embed.FS
