package pressroom

import "embed"

// Migrations holds the goose SQL migrations that own the schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
