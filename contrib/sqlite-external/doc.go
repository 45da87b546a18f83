// Package sqliteexternal provides the optional CGO SQLite driver.
//
// sermonref opens corpus databases with the pure Go modernc.org/sqlite driver
// by default. Building with the cgo_sqlite tag swaps in
// github.com/mattn/go-sqlite3 through this package:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./...
//
// Nothing imports this package directly; core/sqlite selects it by build tag.
package sqliteexternal
