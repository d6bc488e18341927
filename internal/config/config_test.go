package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.PGPort != "5432" || c.PGSSLMode != "disable" {
		t.Fatalf("unexpected pg defaults: %+v", c)
	}
	if c.JWTTTLSecs != 86400 || c.IdempTTLSec != 300 {
		t.Fatalf("unexpected ttl defaults: %+v", c)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	c := Load()
	c.JWTSecret = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestValidate_BadPort(t *testing.T) {
	c := Load()
	c.JWTSecret = "x"
	c.PGPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid PG_PORT")
	}
}

func TestPostgresDSN(t *testing.T) {
	c := Load()
	dsn := c.PostgresDSN()
	for _, part := range []string{"host=postgres", "port=5432", "dbname=assetcare", "sslmode=disable", "TimeZone=UTC"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}
