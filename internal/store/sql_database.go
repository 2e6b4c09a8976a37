package store

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations for the connection dialect.
func (db *DB) Migrate() error {
	if db == nil || db.DB == nil {
		return errors.New("db is nil")
	}
	return migrations.Migrate(db.DB, db.dialect)
}
