// Package migrations embeds the SQL schema migrations so the server binary
// can apply them on startup without shipping the files separately.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
