package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
	"github.com/nemopss/fin-tracker/backend/models"
	"github.com/shopspring/decimal"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens a pool with the given database/sql driver and makes sure the
// schema exists. It fails if the database is unreachable.
func NewStorage(ctx context.Context, driver, connStr string, maxOpenConns int) (*Storage, error) {
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}

	s := &Storage{DB: db}
	if err := s.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Init pings the database and creates the transacoes table and its index if absent.
func (s *Storage) Init(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	_, err := s.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS transacoes (
		id SERIAL PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		category VARCHAR(255) NOT NULL,
		created_at DATE NOT NULL DEFAULT CURRENT_DATE
	)`)
	if err != nil {
		return fmt.Errorf("create table transacoes: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS transacoes_user_id_created_at_idx
		ON transacoes (user_id, created_at DESC)`)
	if err != nil {
		return fmt.Errorf("create index on transacoes: %w", err)
	}
	return nil
}

func (s *Storage) Close() {
	s.DB.Close()
}

// GetTransactionsByUser returns the user's transactions, most recent first.
// The slice is empty, never nil, when the user has none.
func (s *Storage) GetTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, user_id, title, amount, category, created_at
		FROM transacoes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions = []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

// CreateTransaction inserts t and fills in the stored row. A zero CreatedAt
// falls back to the current date on the database side.
func (s *Storage) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	err := s.DB.QueryRowContext(ctx, `INSERT INTO transacoes (user_id, title, amount, category, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5::date, CURRENT_DATE))
		RETURNING id, user_id, title, amount, category, created_at`,
		t.UserID, t.Title, t.Amount, t.Category, t.CreatedAt,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction reports whether a row with the given id existed.
func (s *Storage) DeleteTransaction(ctx context.Context, id int) (bool, error) {
	result, err := s.DB.ExecContext(ctx, "DELETE FROM transacoes WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return n > 0, nil
}

// GetSummary runs three independent sums, so a concurrent write may be seen by
// some of them and not others.
func (s *Storage) GetSummary(ctx context.Context, userID string) (models.Summary, error) {
	var summary models.Summary

	queries := []struct {
		name string
		sql  string
		dst  *decimal.Decimal
	}{
		{"saldo", "SELECT COALESCE(SUM(amount), 0) FROM transacoes WHERE user_id = $1", &summary.Saldo},
		{"renda", "SELECT COALESCE(SUM(amount), 0) FROM transacoes WHERE user_id = $1 AND amount > 0", &summary.Renda},
		{"despesas", "SELECT COALESCE(SUM(amount), 0) FROM transacoes WHERE user_id = $1 AND amount < 0", &summary.Despesas},
	}
	for _, q := range queries {
		if err := s.DB.QueryRowContext(ctx, q.sql, userID).Scan(q.dst); err != nil {
			return models.Summary{}, fmt.Errorf("sum %s: %w", q.name, err)
		}
	}
	return summary, nil
}

// ErrorCode extracts the SQLSTATE from a driver error, or "" if there is none.
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
