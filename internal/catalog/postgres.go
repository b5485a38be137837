package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/database"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/models"
)

// PostgresSource reads the catalog from a table with the columns
// (id, text, description, parameters jsonb, position, owner_email). Rows with
// a NULL owner are shared by every identity.
type PostgresSource struct {
	db    *database.PostgresClient
	query string
}

func NewPostgresSource(db *database.PostgresClient, table string) *PostgresSource {
	if table == "" {
		table = "endpoint_catalog"
	}
	return &PostgresSource{
		db: db,
		query: fmt.Sprintf(
			`SELECT id, text, description, parameters FROM %s WHERE owner_email = $1 OR owner_email IS NULL ORDER BY position, id`,
			pq.QuoteIdentifier(table),
		),
	}
}

func (s *PostgresSource) Name() string {
	return config.CatalogSourcePostgres
}

func (s *PostgresSource) Load(ctx context.Context, identity string) ([]models.Endpoint, error) {
	endpoints, err := s.fetch(ctx, identity)
	observe(s.Name(), resultOf(endpoints, err))
	if err != nil {
		return nil, apperrors.NewConfigurationError("", err)
	}
	return endpoints, nil
}

func (s *PostgresSource) fetch(ctx context.Context, identity string) ([]models.Endpoint, error) {
	rows, err := s.db.Query(ctx, s.query, identity)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var endpoints []models.Endpoint
	for rows.Next() {
		var (
			ep     models.Endpoint
			params []byte
		)
		if err := rows.Scan(&ep.ID, &ep.Text, &ep.Description, &params); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		if len(params) > 0 {
			if err := json.Unmarshal(params, &ep.Parameters); err != nil {
				return nil, fmt.Errorf("decode parameters of %s: %w", ep.ID, err)
			}
		}
		endpoints = append(endpoints, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}
	return endpoints, nil
}
