package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/models"
)

const (
	crmTokensTable = "crm_tokens"
	crmTokenID     = "crm"

	// sqlSaveAttempts and sqlSaveBackoff give 100ms and 200ms pauses between
	// attempts on transient database errors.
	sqlSaveAttempts = 3
	sqlSaveBackoff  = 50 * time.Millisecond

	upsertTokenSuffix = "ON CONFLICT (id) DO UPDATE SET token = excluded.token, expires_at = excluded.expires_at"
)

// sqlTokenStore persists the CRM token in the crm_tokens table so that it
// survives restarts. The table holds at most one row.
type sqlTokenStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLTokenStore constructs a [TokenStore] on top of a migrated database.
func NewSQLTokenStore(db *DB, logger *logger.Logger) TokenStore {
	logger.Debug().Msg("creating sql token store")
	return &sqlTokenStore{
		db:     db,
		logger: logger,
	}
}

// Load reads the token row. A missing row yields [ErrTokenNotFound].
func (s *sqlTokenStore) Load(ctx context.Context) (models.CRMToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select("token", "expires_at").
		From(crmTokensTable).
		Where(sq.Eq{"id": crmTokenID}).
		ToSql()
	if err != nil {
		return models.CRMToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.CRMToken
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&token.Value, &token.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CRMToken{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*sqlTokenStore.Load").Str("sqlstate", postgresError(err)).Msg("error: scanning error")
		return models.CRMToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// Save upserts the token row. Transient failures, as judged by the
// connection's [ErrorClassificator], are retried.
func (s *sqlTokenStore) Save(ctx context.Context, token models.CRMToken) error {
	query, args, err := s.db.builder.
		Insert(crmTokensTable).
		Columns("id", "token", "expires_at").
		Values(crmTokenID, token.Value, token.ExpiresAt.UTC()).
		Suffix(upsertTokenSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqlTokenStore.Save", query, args)
}

// Clear deletes the token row.
func (s *sqlTokenStore) Clear(ctx context.Context) error {
	query, args, err := s.db.builder.
		Delete(crmTokensTable).
		Where(sq.Eq{"id": crmTokenID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "*sqlTokenStore.Clear", query, args)
}

func (s *sqlTokenStore) exec(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	err := utils.Retry(ctx, sqlSaveAttempts, sqlSaveBackoff, s.retryable, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, query, args...)
		if err != nil && s.retryable(err) {
			log.Warn().Err(err).Str("func", funcName).Msg("retrying statement after transient error")
		}
		return err
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Str("sqlstate", postgresError(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlTokenStore) retryable(err error) bool {
	if s.db.errorClassificator == nil {
		return false
	}
	return s.db.errorClassificator.Classify(err) == Retryable
}
