// Package migrations embeds the schema migrations so the binaries do not depend on the working directory.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
