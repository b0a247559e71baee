package db

import (
	"io/fs"
)

// migrationsFS returns the migrations directory rooted so goose sees the
// .sql files at the top level.
func migrationsFS() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}
