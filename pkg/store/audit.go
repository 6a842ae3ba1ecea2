package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/moderation"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS moderation_audit (
	id           UUID PRIMARY KEY,
	request_id   UUID NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	content_hash TEXT NOT NULL,
	action       TEXT NOT NULL,
	risk_score   DOUBLE PRECISION NOT NULL,
	confidence   DOUBLE PRECISION NOT NULL,
	flags        JSONB NOT NULL,
	verdict      JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS moderation_audit_created_idx ON moderation_audit (created_at);
CREATE INDEX IF NOT EXISTS moderation_audit_action_idx ON moderation_audit (action);
`

// AuditLog is an insert-only record of every verdict, for moderator
// review and model tuning. Message content is stored only as a hash.
type AuditLog struct {
	pool *pgxpool.Pool
}

// NewAuditLog connects to Postgres and ensures the audit table
// exists. An empty dsn returns a disabled log; connection failures
// disable auditing with a warning.
func NewAuditLog(ctx context.Context, dsn string) *AuditLog {
	if dsn == "" {
		return &AuditLog{}
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Printf("[WARN] audit log disabled: %v", err)
		return &AuditLog{}
	}
	if _, err := pool.Exec(ctx, auditSchema); err != nil {
		log.Printf("[WARN] audit log disabled: schema setup failed: %v", err)
		pool.Close()
		return &AuditLog{}
	}
	log.Printf("[STARTUP] audit log connected")
	return &AuditLog{pool: pool}
}

// Enabled reports whether auditing is active.
func (a *AuditLog) Enabled() bool { return a != nil && a.pool != nil }

// Record writes one verdict. Failures are logged and dropped so the
// audit trail never blocks moderation.
func (a *AuditLog) Record(ctx context.Context, requestID uuid.UUID, text string, verdict moderation.Verdict) {
	if !a.Enabled() {
		return
	}
	flags, err := json.Marshal(verdict.Flags)
	if err != nil {
		flags = []byte("[]")
	}
	full, err := json.Marshal(verdict)
	if err != nil {
		log.Printf("[WARN] audit encode failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err = a.pool.Exec(ctx,
		`INSERT INTO moderation_audit (id, request_id, content_hash, action, risk_score, confidence, flags, verdict)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), requestID, Key(text), verdict.Action,
		verdict.RiskScore, verdict.Confidence, flags, full,
	)
	if err != nil {
		log.Printf("[WARN] audit write failed: %v", err)
	}
}

// Close releases the connection pool.
func (a *AuditLog) Close() {
	if a.Enabled() {
		a.pool.Close()
	}
}
