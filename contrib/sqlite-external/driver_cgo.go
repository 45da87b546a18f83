//go:build cgo_sqlite

package sqliteexternal

import (
	_ "github.com/mattn/go-sqlite3" // CGO SQLite driver
)

// Driver identity reported by core/sqlite.GetInfo in cgo_sqlite builds.
const (
	DriverName    = "sqlite3"
	DriverType    = "cgo"
	DriverPackage = "github.com/mattn/go-sqlite3"
)
