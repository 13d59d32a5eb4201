// Package migrations embeds the local-state schema migrations so a structure
// change ships as a new versioned migration rather than an in-place rewrite.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
