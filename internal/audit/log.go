package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Event types recorded by the screening service.
const (
	TypeLoginOK         = "LoginOK"
	TypeLoginDenied     = "LoginDenied"
	TypeSettingsUpdated = "SettingsUpdated"
	TypeReportExported  = "ReportExported"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string // natural key: DNI, applicant id, or admin user
	DataJSON  string
	CreatedAt int64
}

// Log is an append-only trail backed by the event_log table.
type Log struct{ db *sql.DB }

func NewLog(db *sql.DB) *Log { return &Log{db: db} }

func (l *Log) Append(ctx context.Context, typ, key string, data any) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(blob), time.Now().Unix())
	return err
}

// RecordLogin appends a login attempt. Failures to write never block the
// login path; callers ignore the returned error at their discretion.
func (l *Log) RecordLogin(ctx context.Context, dni string, allowed bool, reason string) error {
	typ := TypeLoginOK
	if !allowed {
		typ = TypeLoginDenied
	}
	return l.Append(ctx, typ, dni, map[string]any{"allowed": allowed, "reason": reason})
}

// Recent returns the newest events, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT "offset", typ, key, data, created_at FROM event_log
		 ORDER BY "offset" DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Offset, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
