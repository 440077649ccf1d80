package country

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
	"contacts/pkg/platform/tx"
)

// PostgresStore persists countries in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed country store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateIfNameAvailable inserts the country; the unique index on name is the backstop.
func (s *PostgresStore) CreateIfNameAvailable(ctx context.Context, c *models.Country) error {
	if c == nil {
		return fmt.Errorf("country is required")
	}
	query := `
		INSERT INTO countries (id, name, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(c.ID),
		c.Name,
		c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("country name must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create country: %w", err)
	}
	return nil
}

// FindByID retrieves a country by its UUID.
func (s *PostgresStore) FindByID(ctx context.Context, countryID id.CountryID) (*models.Country, error) {
	query := `
		SELECT id, name, created_at
		FROM countries
		WHERE id = $1
	`
	c, err := scanCountry(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(countryID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country by id: %w", err)
	}
	return c, nil
}

// FindByName retrieves a country by exact (case-sensitive) name.
func (s *PostgresStore) FindByName(ctx context.Context, name string) (*models.Country, error) {
	query := `
		SELECT id, name, created_at
		FROM countries
		WHERE name = $1
	`
	c, err := scanCountry(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country by name: %w", err)
	}
	return c, nil
}

// ListAll returns every country in insertion order.
func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Country, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT id, name, created_at
		FROM countries
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var out []*models.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return out, nil
}

type countryRow interface {
	Scan(dest ...any) error
}

func scanCountry(row countryRow) (*models.Country, error) {
	var c models.Country
	var countryID uuid.UUID
	if err := row.Scan(&countryID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.ID = id.CountryID(countryID)
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
