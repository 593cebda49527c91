package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

type Pool struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func DSN(cfg config.DatabaseConfig) string {
	parts := []string{
		"host=" + quote(strings.TrimSpace(cfg.DBHost)),
		"port=" + quote(strings.TrimSpace(cfg.DBPort)),
		"user=" + quote(strings.TrimSpace(cfg.DBUser)),
		"password=" + quote(cfg.DBPassword),
		"dbname=" + quote(strings.TrimSpace(cfg.DBName)),
		"sslmode=" + quote(strings.TrimSpace(cfg.DBSSLMode)),
	}
	if root := strings.TrimSpace(cfg.DBSSLRootCert); root != "" {
		parts = append(parts, "sslrootcert="+quote(root))
	}
	return strings.Join(parts, " ")
}

// quote escapes a keyword/value DSN value.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	pcfg.MaxConns = 4
	pcfg.MaxConnIdleTime = 5 * time.Minute

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}

	sqldb := stdlib.OpenDBFromPool(p)
	return &Pool{pool: p, sqlDB: sqldb}, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return fmt.Errorf("nil db")
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	if p.sqlDB != nil {
		_ = p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Pool) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if p == nil || p.pool == nil {
		return 0, fmt.Errorf("nil db")
	}
	tag, err := p.pool.Exec(ctx, query, args...)
	return tag.RowsAffected(), err
}

func (p *Pool) Acquire(ctx context.Context) (database.Conn, error) {
	if p == nil || p.pool == nil {
		return nil, fmt.Errorf("nil db")
	}
	c, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pgxConn{conn: c}, nil
}

func (p *Pool) Dialect() database.Dialect {
	return database.Postgres
}

func (p *Pool) SQLDB() *sql.DB {
	if p == nil {
		return nil
	}
	return p.sqlDB
}

type pgxConn struct {
	conn *pgxpool.Conn
}

func (c pgxConn) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgxRows{rows: r}, nil
}

func (c pgxConn) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return pgxRow{row: c.conn.QueryRow(ctx, query, args...)}
}

func (c pgxConn) Release() {
	c.conn.Release()
}

type pgxRows struct {
	rows pgx.Rows
}

func (r pgxRows) Close() {
	r.rows.Close()
}

func (r pgxRows) Next() bool {
	return r.rows.Next()
}

func (r pgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r pgxRows) Err() error {
	return r.rows.Err()
}

type pgxRow struct {
	row pgx.Row
}

func (r pgxRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return database.ErrNoRows
	}
	return err
}
