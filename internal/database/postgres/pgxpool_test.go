package postgres

import (
	"strings"
	"testing"

	"portfolio/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:        "gateway.example.com",
		DBPort:        "4000",
		DBUser:        "reader",
		DBPassword:    "p'ss word",
		DBName:        "portfolio",
		DBSSLMode:     "verify-full",
		DBSSLRootCert: "/etc/ssl/ca.pem",
	})

	for _, want := range []string{
		"host='gateway.example.com'",
		"port='4000'",
		`password='p\'ss word'`,
		"sslmode='verify-full'",
		"sslrootcert='/etc/ssl/ca.pem'",
	} {
		if !strings.Contains(dsn, want) {
			t.Errorf("dsn %q missing %q", dsn, want)
		}
	}
}

func TestDSN_NoRootCert(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{DBHost: "h", DBPort: "4000", DBSSLMode: "verify-ca"})
	if strings.Contains(dsn, "sslrootcert") {
		t.Fatalf("unexpected sslrootcert in %q", dsn)
	}
}

func TestDSN_VerifyFullValidatesCertificate(t *testing.T) {
	pcfg, err := pgxpool.ParseConfig(DSN(config.DatabaseConfig{
		DBHost: "gateway.example.com", DBPort: "4000", DBUser: "reader", DBName: "portfolio",
		DBSSLMode: "verify-full",
	}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tlsCfg := pcfg.ConnConfig.TLSConfig
	if tlsCfg == nil {
		t.Fatalf("expected TLS config")
	}
	if tlsCfg.InsecureSkipVerify {
		t.Fatalf("expected certificate verification")
	}
	if tlsCfg.ServerName != "gateway.example.com" {
		t.Fatalf("unexpected server name %q", tlsCfg.ServerName)
	}
	if len(pcfg.ConnConfig.Fallbacks) != 0 {
		t.Fatalf("expected no plaintext fallback, got %d", len(pcfg.ConnConfig.Fallbacks))
	}
}
