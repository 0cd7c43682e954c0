package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditEntry is one diagnostic record of a login attempt or product save.
type AuditEntry struct {
	Email     string
	Action    string
	IP        string
	UserAgent string
	Metadata  map[string]any
}

// AuditRepository appends audit entries to Postgres. Writes are best-effort
// diagnostics; callers ignore failures so an audit outage never affects a
// request outcome.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func (r *AuditRepository) Insert(ctx context.Context, e AuditEntry) error {
	md, err := json.Marshal(e.Metadata)
	if err != nil {
		md = []byte("{}")
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO audit_logs (email, action, ip, user_agent, metadata)
		VALUES ($1, $2, $3, $4, $5)
	`, textOrNull(e.Email), e.Action, textOrNull(e.IP), textOrNull(e.UserAgent), md)
	return err
}
