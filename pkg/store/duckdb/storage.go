package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const CustomersTableSchema = `
	CREATE TABLE IF NOT EXISTS customers (
		customer_id VARCHAR NOT NULL PRIMARY KEY,
		gender VARCHAR,
		senior_citizen BOOLEAN,
		partner VARCHAR,
		dependents VARCHAR,
		tenure INTEGER NOT NULL,
		phone_service VARCHAR,
		multiple_lines VARCHAR,
		internet_service VARCHAR,
		online_security VARCHAR,
		online_backup VARCHAR,
		device_protection VARCHAR,
		tech_support VARCHAR,
		streaming_tv VARCHAR,
		streaming_movies VARCHAR,
		contract VARCHAR NOT NULL,
		paperless_billing VARCHAR,
		payment_method VARCHAR,
		monthly_charges DOUBLE NOT NULL,
		total_charges DOUBLE NOT NULL,
		churn BOOLEAN NOT NULL
	);
`

const UsersTableSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR NOT NULL PRIMARY KEY,
		email VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		password_hash VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	CustomersTableSchema,
	UsersTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
