// Package migrations embeds the goose SQL migrations for both supported
// storage backends. The directory name doubles as the goose dialect root.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
