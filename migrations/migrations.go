// Package migrations embeds the SQL schema applied at startup.
package migrations

import "embed"

// FS holds versioned <version>_<name>.{up,down}.sql files.
//
//go:embed *.sql
var FS embed.FS
