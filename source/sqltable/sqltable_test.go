package sqltable_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/reoring/datacontract/source/sqltable"
)

func TestParseLocation(t *testing.T) {
	cases := []struct {
		in     string
		driver string
		dsn    string
		table  string
	}{
		{"sqlite://data/users.db?table=users", "sqlite", "data/users.db", "users"},
		{"sqlite:///tmp/u.db?table=main.users", "sqlite", "/tmp/u.db", "main.users"},
		{"mysql://u:p@tcp(localhost:3306)/app?table=users", "mysql", "u:p@tcp(localhost:3306)/app?parseTime=true", "users"},
		{"postgres://u:p@localhost/app?sslmode=disable&table=users", "postgres", "postgres://u:p@localhost/app?sslmode=disable", "users"},
	}
	for _, tc := range cases {
		got, err := sqltable.ParseLocation(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if got.Driver != tc.driver || got.DSN != tc.dsn || got.Table != tc.table {
			t.Fatalf("%s: got %+v", tc.in, got)
		}
	}
	for _, bad := range []string{"sqlite://x.db", "redis://host?table=t", "users.csv"} {
		if _, err := sqltable.ParseLocation(bad); err == nil {
			t.Fatalf("%s: expected error", bad)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := sqltable.QuoteIdent("postgres", `public.we"ird`); got != `"public"."we""ird"` {
		t.Fatalf("postgres: %s", got)
	}
	if got := sqltable.QuoteIdent("mysql", "users"); got != "`users`" {
		t.Fatalf("mysql: %s", got)
	}
}

func TestLoad_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, stmt := range []string{
		`CREATE TABLE users (id INTEGER, email TEXT, score REAL, age INTEGER)`,
		`INSERT INTO users VALUES (1, 'a@example.com', 1.5, 30)`,
		`INSERT INTO users VALUES (2, NULL, 2.0, 150)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}
	db.Close()

	ds, err := sqltable.Load(context.Background(), sqltable.Target{Driver: "sqlite", DSN: path, Table: "users"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Columns) != 4 || ds.Columns[0] != "id" || ds.Columns[3] != "age" {
		t.Fatalf("columns: %v", ds.Columns)
	}
	if ds.Len() != 2 {
		t.Fatalf("rows: %d", ds.Len())
	}
	if ds.Rows[0]["id"] != int64(1) || ds.Rows[0]["email"] != "a@example.com" || ds.Rows[0]["score"] != 1.5 {
		t.Fatalf("row 0: %#v", ds.Rows[0])
	}
	if ds.Rows[1]["email"] != nil || ds.Rows[1]["age"] != int64(150) {
		t.Fatalf("row 1: %#v", ds.Rows[1])
	}
}
