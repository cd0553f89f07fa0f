package relay

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// State is the delivery state of a stored submission
type State string

const (
	StatePending   State = "pending"
	StateDelivered State = "delivered"
	StateFailed    State = "failed"
)

// Record is a contact submission as stored by the relay
type Record struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	HashedIP  string
	State     State
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
	claims    int
}

// Stats summarises the outbox
type Stats struct {
	Total     int64 `json:"total"`
	Delivered int64 `json:"delivered"`
	Pending   int64 `json:"pending"`
	Failed    int64 `json:"failed"`
	Today     int64 `json:"today"`
}

// Store is the sqlite-backed outbox. The submission id is the primary key,
// which makes a retried request with the same idempotency key a no-op.
type Store struct {
	db *sql.DB
	// Lease is how long a pending submission belongs to the request that
	// claimed it. After that a retry may claim it again.
	Lease time.Duration
}

// DefaultLease outlasts the relay's mail send timeout
const DefaultLease = 2 * time.Minute

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	subject TEXT NOT NULL,
	message TEXT NOT NULL,
	hashed_ip TEXT,
	state TEXT NOT NULL DEFAULT 'pending',
	attempts INTEGER NOT NULL DEFAULT 0,
	claims INTEGER NOT NULL DEFAULT 0,
	last_error TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS submissions_created ON submissions(created_at);
`

// OpenStore opens or creates the database at path
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db, Lease: DefaultLease}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Claim stores r unless a submission with the same id exists. It returns the
// stored record and whether this call owns its delivery. A failed record, or
// a pending one whose lease ran out, is moved back to pending for the caller.
func (s *Store) Claim(ctx context.Context, r Record) (Record, bool, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, name, email, subject, message, hashed_ip, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, r.ID, r.Name, r.Email, r.Subject, r.Message, r.HashedIP, StatePending, now, now)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to store submission: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		r.State = StatePending
		r.CreatedAt = now
		r.UpdatedAt = now
		return r, true, nil
	}

	existing, err := s.Get(ctx, r.ID)
	if err != nil {
		return Record{}, false, err
	}
	stale := existing.State == StatePending && s.Lease > 0 && now.Sub(existing.UpdatedAt) > s.Lease
	if existing.State != StateFailed && !stale {
		return existing, false, nil
	}

	// claims is bumped on every requeue, so of two racing retries only the
	// one that read the current value wins
	res, err = s.db.ExecContext(ctx, `
		UPDATE submissions SET state = ?, claims = claims + 1, updated_at = ?
		WHERE id = ? AND claims = ?
	`, StatePending, now, r.ID, existing.claims)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to requeue submission: %w", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		current, err := s.Get(ctx, r.ID)
		if err != nil {
			return Record{}, false, err
		}
		return current, false, nil
	}
	existing.State = StatePending
	existing.UpdatedAt = now
	existing.claims++
	return existing, true, nil
}

// ErrNotFound is returned for unknown submission ids
var ErrNotFound = errors.New("submission not found")

// Get loads a submission by id
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	var r Record
	var hashed, lastErr sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, subject, message, hashed_ip, state, attempts, claims, last_error, created_at, updated_at
		FROM submissions WHERE id = ?
	`, id).Scan(&r.ID, &r.Name, &r.Email, &r.Subject, &r.Message, &hashed, &r.State,
		&r.Attempts, &r.claims, &lastErr, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load submission: %w", err)
	}
	r.HashedIP = hashed.String
	r.LastError = lastErr.String
	return r, nil
}

// MarkDelivered records a successful delivery
func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	return s.finish(ctx, id, StateDelivered, "")
}

// MarkFailed records a failed delivery attempt
func (s *Store) MarkFailed(ctx context.Context, id string, cause error) error {
	return s.finish(ctx, id, StateFailed, cause.Error())
}

func (s *Store) finish(ctx context.Context, id string, state State, lastErr string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE submissions
		SET state = ?, attempts = attempts + 1, last_error = ?, updated_at = ?
		WHERE id = ?
	`, state, lastErr, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

// Stats counts submissions by state
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	today := time.Now().UTC().Truncate(24 * time.Hour)
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(state = 'delivered'), 0),
			COALESCE(SUM(state = 'pending'), 0),
			COALESCE(SUM(state = 'failed'), 0),
			COALESCE(SUM(created_at >= ?), 0)
		FROM submissions
	`, today).Scan(&st.Total, &st.Delivered, &st.Pending, &st.Failed, &st.Today)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count submissions: %w", err)
	}
	return st, nil
}

// Cleanup removes delivered submissions older than age and returns how many
// were deleted
func (s *Store) Cleanup(ctx context.Context, age time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM submissions WHERE state = ? AND created_at < ?`,
		StateDelivered, time.Now().UTC().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("failed to clean up submissions: %w", err)
	}
	return res.RowsAffected()
}
