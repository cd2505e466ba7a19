// Package migrations embeds the SQL migration files for the analytics
// schema so the binary is self-contained.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
