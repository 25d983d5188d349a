package migrations

import "embed"

// FS holds the ordered SQL migration files applied by Run.
//
//go:embed *.sql
var FS embed.FS
