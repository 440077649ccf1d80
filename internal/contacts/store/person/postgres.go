package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contacts/internal/contacts/models"
	"contacts/internal/sentinel"
	id "contacts/pkg/domain"
	"contacts/pkg/platform/tx"
)

// PostgresStore persists persons in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed person store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const personColumns = `id, name, email, date_of_birth, gender, country_id, address, receive_newsletters, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, p *models.Person) error {
	if p == nil {
		return fmt.Errorf("person is required")
	}
	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(p.ID),
		p.Name,
		p.Email,
		nullDate(p.DateOfBirth),
		nullString(string(p.Gender)),
		nullCountry(p.CountryID),
		nullString(p.Address),
		p.ReceiveNewsletters,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("person id must be unique: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

// Update replaces every mutable column in a single statement.
func (s *PostgresStore) Update(ctx context.Context, p *models.Person) error {
	if p == nil {
		return fmt.Errorf("person is required")
	}
	query := `
		UPDATE persons
		SET name = $2, email = $3, date_of_birth = $4, gender = $5, country_id = $6,
		    address = $7, receive_newsletters = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(p.ID),
		p.Name,
		p.Email,
		nullDate(p.DateOfBirth),
		nullString(string(p.Gender)),
		nullCountry(p.CountryID),
		nullString(p.Address),
		p.ReceiveNewsletters,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return requireRow(res, "update person rows")
}

func (s *PostgresStore) Delete(ctx context.Context, personID id.PersonID) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, uuid.UUID(personID))
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return requireRow(res, "delete person rows")
}

func (s *PostgresStore) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`
	p, err := scanPerson(tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(personID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person by id: %w", err)
	}
	return p, nil
}

// ListAll returns every person in insertion order.
func (s *PostgresStore) ListAll(ctx context.Context) ([]*models.Person, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `SELECT `+personColumns+` FROM persons ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var out []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return out, nil
}

type personRow interface {
	Scan(dest ...any) error
}

func scanPerson(row personRow) (*models.Person, error) {
	var (
		p         models.Person
		personID  uuid.UUID
		dob       sql.NullTime
		gender    sql.NullString
		countryID uuid.NullUUID
		address   sql.NullString
	)
	if err := row.Scan(&personID, &p.Name, &p.Email, &dob, &gender, &countryID, &address,
		&p.ReceiveNewsletters, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = id.PersonID(personID)
	if dob.Valid {
		d := time.Date(dob.Time.Year(), dob.Time.Month(), dob.Time.Day(), 0, 0, 0, 0, time.UTC)
		p.DateOfBirth = &d
	}
	p.Gender = models.Gender(gender.String)
	if countryID.Valid {
		p.CountryID = id.CountryID(countryID.UUID)
	}
	p.Address = address.String
	return &p, nil
}

func requireRow(res sql.Result, action string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullCountry(countryID id.CountryID) uuid.NullUUID {
	if countryID.IsNil() {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(countryID), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
