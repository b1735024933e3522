package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/churn-atlas/pkg/models/store"
	"github.com/de-tools/churn-atlas/pkg/store/duckdb"
)

// Store is the durable customer-record collaborator: Count/FindAll for cache
// population, DeleteAll/InsertMany for the upsert that follows a bulk import.
type Store interface {
	Count(ctx context.Context) (int, error)
	FindAll(ctx context.Context) ([]store.CustomerRow, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, rows []store.CustomerRow) error
}

type customerStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &customerStore{db: db}, nil
}

func (s *customerStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

func (s *customerStore) FindAll(ctx context.Context) ([]store.CustomerRow, error) {
	query := `
		SELECT customer_id, gender, senior_citizen, partner, dependents, tenure,
			phone_service, multiple_lines, internet_service, online_security,
			online_backup, device_protection, tech_support, streaming_tv,
			streaming_movies, contract, paperless_billing, payment_method,
			monthly_charges, total_charges, churn
		FROM customers
		ORDER BY customer_id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var result []store.CustomerRow
	for rows.Next() {
		var r store.CustomerRow
		err := rows.Scan(
			&r.CustomerID, &r.Gender, &r.SeniorCitizen, &r.Partner, &r.Dependents,
			&r.Tenure, &r.PhoneService, &r.MultipleLines, &r.InternetService,
			&r.OnlineSecurity, &r.OnlineBackup, &r.DeviceProtection, &r.TechSupport,
			&r.StreamingTV, &r.StreamingMovies, &r.Contract, &r.PaperlessBilling,
			&r.PaymentMethod, &r.MonthlyCharges, &r.TotalCharges, &r.Churn,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (s *customerStore) DeleteAll(ctx context.Context) error {
	tx := duckdb.GetTransaction(ctx)

	var err error
	if tx == nil {
		_, err = s.db.ExecContext(ctx, `DELETE FROM customers`)
	} else {
		_, err = tx.ExecContext(ctx, `DELETE FROM customers`)
	}
	if err != nil {
		return fmt.Errorf("delete customers: %w", err)
	}
	return nil
}

func (s *customerStore) InsertMany(ctx context.Context, rows []store.CustomerRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO customers (
			customer_id, gender, senior_citizen, partner, dependents, tenure,
			phone_service, multiple_lines, internet_service, online_security,
			online_backup, device_protection, tech_support, streaming_tv,
			streaming_movies, contract, paperless_billing, payment_method,
			monthly_charges, total_charges, churn
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err = stmt.ExecContext(ctx,
			r.CustomerID, r.Gender, r.SeniorCitizen, r.Partner, r.Dependents,
			r.Tenure, r.PhoneService, r.MultipleLines, r.InternetService,
			r.OnlineSecurity, r.OnlineBackup, r.DeviceProtection, r.TechSupport,
			r.StreamingTV, r.StreamingMovies, r.Contract, r.PaperlessBilling,
			r.PaymentMethod, r.MonthlyCharges, r.TotalCharges, r.Churn,
		)
		if err != nil {
			return fmt.Errorf("insert customer %s: %w", r.CustomerID, err)
		}
	}

	return nil
}
