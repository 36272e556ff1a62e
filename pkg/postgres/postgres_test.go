package postgres

import "testing"

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "shop", Pass: "p@ss", DB: "pureez"}
	got := cfg.DSN()
	want := "postgres://shop:p%40ss@db:5432/pureez?sslmode=disable"
	if got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}

	cfg.SSLMode = "require"
	if got := cfg.DSN(); got != "postgres://shop:p%40ss@db:5432/pureez?sslmode=require" {
		t.Fatalf("DSN() with sslmode = %q", got)
	}
}
