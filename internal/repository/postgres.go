package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"audit-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/lib/pq"
)

// PostgresRepository persists audit requests in the audit_requests
// table. Id assignment is delegated to the table's SERIAL sequence, so
// uniqueness and monotonicity hold under concurrent inserts without any
// locking here.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, input domain.InsertAuditRequest) (*domain.AuditRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO audit_requests (name, email, phone, website, business, goals)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, is_contacted
	`

	auditRequest := domain.AuditRequest{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Website:  input.Website,
		Business: input.Business,
		Goals:    input.Goals,
	}

	err := r.db.QueryRowContext(ctx, query,
		input.Name,
		input.Email,
		input.Phone,
		input.Website,
		input.Business,
		pq.Array(input.Goals),
	).Scan(&auditRequest.ID, &auditRequest.CreatedAt, &auditRequest.IsContacted)

	if err != nil {
		log.WithError(err).WithField("email", input.Email).Error("Failed to insert audit request")
		return nil, fmt.Errorf("failed to insert audit request: %w", err)
	}

	return &auditRequest, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*domain.AuditRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT id, name, email, phone, website, business, goals, created_at, is_contacted
		FROM audit_requests
		WHERE id = $1
	`

	auditRequest, err := scanAuditRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAuditRequestNotFound
		}
		log.WithError(err).WithField("audit_request_id", id).Error("Failed to get audit request by ID")
		return nil, fmt.Errorf("failed to get audit request by ID: %w", err)
	}

	return auditRequest, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]domain.AuditRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT id, name, email, phone, website, business, goals, created_at, is_contacted
		FROM audit_requests
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to list audit requests")
		return nil, fmt.Errorf("failed to list audit requests: %w", err)
	}
	defer rows.Close()

	auditRequests := make([]domain.AuditRequest, 0)
	for rows.Next() {
		auditRequest, err := scanAuditRequest(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan audit request row")
			return nil, fmt.Errorf("failed to scan audit request row: %w", err)
		}
		auditRequests = append(auditRequests, *auditRequest)
	}

	if err := rows.Err(); err != nil {
		log.WithError(err).Error("Error iterating over audit request rows")
		return nil, fmt.Errorf("error iterating over audit request rows: %w", err)
	}

	return auditRequests, nil
}

func (r *PostgresRepository) UpdateContactStatus(ctx context.Context, id int, isContacted bool) (*domain.AuditRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE audit_requests
		SET is_contacted = $1
		WHERE id = $2
		RETURNING id, name, email, phone, website, business, goals, created_at, is_contacted
	`

	auditRequest, err := scanAuditRequest(r.db.QueryRowContext(ctx, query, isContacted, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAuditRequestNotFound
		}
		log.WithError(err).WithField("audit_request_id", id).Error("Failed to update contact status")
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}

	return auditRequest, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, input domain.InsertUser) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id
	`

	user := domain.User{
		Username: input.Username,
		Password: input.Password,
	}

	if err := r.db.QueryRowContext(ctx, query, input.Username, input.Password).Scan(&user.ID); err != nil {
		log.WithError(err).WithField("username", input.Username).Error("Failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT id, username, password FROM users WHERE id = $1`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		log.WithError(err).WithField("user_id", id).Error("Failed to get user by ID")
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT id, username, password FROM users WHERE username = $1`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		log.WithError(err).WithField("username", username).Error("Failed to get user by username")
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAuditRequest(row rowScanner) (*domain.AuditRequest, error) {
	var auditRequest domain.AuditRequest
	var phone, business sql.NullString
	var goals pq.StringArray

	err := row.Scan(
		&auditRequest.ID,
		&auditRequest.Name,
		&auditRequest.Email,
		&phone,
		&auditRequest.Website,
		&business,
		&goals,
		&auditRequest.CreatedAt,
		&auditRequest.IsContacted,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		auditRequest.Phone = &phone.String
	}
	if business.Valid {
		auditRequest.Business = &business.String
	}
	if goals != nil {
		auditRequest.Goals = []string(goals)
	}

	return &auditRequest, nil
}
