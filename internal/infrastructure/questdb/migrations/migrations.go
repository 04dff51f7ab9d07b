// Package migrations embeds the QuestDB schema files so the migrate command
// ships them inside the binary.
package migrations

import "embed"

// Files holds every schema file, named NNN_description.sql. Lexical order is
// execution order.
//
//go:embed *.sql
var Files embed.FS
