package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"outreach-tracker/internal/config"
	"outreach-tracker/internal/models"
)

// PostgresStore is the database/sql relational backend.
type PostgresStore struct {
	conn *sql.DB
}

// NewPostgresStore connects to PostgreSQL and creates the schema.
func NewPostgresStore(cfg config.PostgresConfig) (*PostgresStore, error) {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslmode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	s := &PostgresStore{conn: conn}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS companies (
		id SERIAL PRIMARY KEY,
		client_id VARCHAR(32) NOT NULL,
		serial_no INTEGER NOT NULL,
		company_name VARCHAR(255) NOT NULL,
		company_detail TEXT,
		company_contact VARCHAR(100),
		company_mail VARCHAR(255),
		company_location VARCHAR(255),
		company_website VARCHAR(255),
		mail_sent VARCHAR(20) NOT NULL DEFAULT 'Not Sent',
		interview VARCHAR(20) NOT NULL DEFAULT 'No Idea',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_companies_serial_no ON companies(serial_no);
	CREATE INDEX IF NOT EXISTS idx_companies_client_id ON companies(client_id);

	CREATE TABLE IF NOT EXISTS outreach_snapshots (
		id SERIAL PRIMARY KEY,
		snapshot_at DATE NOT NULL UNIQUE,
		total INTEGER NOT NULL,
		mail_sent INTEGER NOT NULL,
		interviewed INTEGER NOT NULL,
		pending INTEGER NOT NULL
	);
	`
	_, err := s.conn.Exec(query)
	return err
}

// ListAll returns every company sorted by serialNo ascending.
func (s *PostgresStore) ListAll(ctx context.Context) ([]models.Company, error) {
	query := `
		SELECT id, client_id, serial_no,
		       company_name, company_detail, company_contact, company_mail,
		       company_location, company_website,
		       mail_sent, interview, created_at, updated_at
		FROM companies
		ORDER BY serial_no ASC
	`

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var (
			c         models.Company
			id        int64
			updatedAt sql.NullTime
		)
		err := rows.Scan(
			&id, &c.ClientID, &c.SerialNo,
			&c.CompanyName, &c.CompanyDetail, &c.CompanyContact, &c.CompanyMail,
			&c.CompanyLocation, &c.CompanyWebsite,
			&c.MailSent, &c.Interview, &c.CreatedAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}
		c.StoreID = strconv.FormatInt(id, 10)
		if updatedAt.Valid {
			c.UpdatedAt = updatedAt.Time
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

// Insert stores a new company and returns the assigned primary key.
func (s *PostgresStore) Insert(ctx context.Context, company models.Company) (string, error) {
	query := `
		INSERT INTO companies (
			client_id, serial_no,
			company_name, company_detail, company_contact, company_mail,
			company_location, company_website,
			mail_sent, interview, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := s.conn.QueryRowContext(ctx, query,
		company.ClientID, company.SerialNo,
		company.CompanyName, company.CompanyDetail, company.CompanyContact, company.CompanyMail,
		company.CompanyLocation, company.CompanyWebsite,
		string(company.MailSent), string(company.Interview), company.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

// Update sets the translated columns on one row. Unknown field names are
// dropped, matching the set-fields merge contract.
func (s *PostgresStore) Update(ctx context.Context, storeID string, fields map[string]any) (int64, error) {
	id, err := parseRowID(storeID)
	if err != nil {
		return 0, err
	}

	var (
		assignments []string
		args        []any
	)
	for key, value := range fields {
		column, ok := columnForField[key]
		if !ok {
			continue
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(assignments) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE companies SET %s WHERE id = $%d",
		strings.Join(assignments, ", "), len(args))

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Delete removes one row by id; a missing id yields count 0.
func (s *PostgresStore) Delete(ctx context.Context, storeID string) (int64, error) {
	id, err := parseRowID(storeID)
	if err != nil {
		return 0, err
	}

	result, err := s.conn.ExecContext(ctx, "DELETE FROM companies WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// SaveSnapshot upserts the day's aggregate stats row.
func (s *PostgresStore) SaveSnapshot(ctx context.Context, snap models.OutreachSnapshot) error {
	query := `
		INSERT INTO outreach_snapshots (snapshot_at, total, mail_sent, interviewed, pending)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (snapshot_at) DO UPDATE SET
			total = EXCLUDED.total,
			mail_sent = EXCLUDED.mail_sent,
			interviewed = EXCLUDED.interviewed,
			pending = EXCLUDED.pending
	`
	day := snap.SnapshotAt.Truncate(24 * time.Hour)
	_, err := s.conn.ExecContext(ctx, query, day, snap.Total, snap.MailSent, snap.Interviewed, snap.Pending)
	return err
}

// Ping verifies the connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.conn.Close()
}
