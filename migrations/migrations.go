// Package migrations embeds the goose SQL migrations for postgres deployments.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
