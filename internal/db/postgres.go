package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

// DSNFromEnv builds the Postgres connection string from PG_* variables.
func DSNFromEnv() string {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

// InitPostgres connects the sqlx pool used by the telemetry-path repos.
// The container may come up before the database does, so connection is
// retried briefly.
func InitPostgres() error {
	dsn := DSNFromEnv()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			DB.SetMaxOpenConns(20)
			DB.SetMaxIdleConns(5)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
