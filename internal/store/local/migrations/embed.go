// Package migrations embeds the goose scripts defining the local database
// schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
