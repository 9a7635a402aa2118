// Package migrations embeds the SQL migration files for the API store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
