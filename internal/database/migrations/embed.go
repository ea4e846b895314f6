package migrations

import "embed"

//go:embed cuidatec_schema.sql
var Files embed.FS
