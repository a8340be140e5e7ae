// internal/audit/logger.go

// Package audit records mutating API requests to an append-only trail.
package audit

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/tenant"
	chmw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// Logger persists audit entries. Failures must never fail the audited
// request.
type Logger interface {
	Record(ctx context.Context, entry *model.AuditLog) error
}

// NoOpLogger discards every entry. Used in tests and the CLI.
type NoOpLogger struct{}

func (NoOpLogger) Record(ctx context.Context, entry *model.AuditLog) error { return nil }

// GormLogger writes entries to the audit_logs table.
type GormLogger struct {
	db *gorm.DB
}

func NewGormLogger(db *gorm.DB) *GormLogger {
	return &GormLogger{db: db}
}

func (l *GormLogger) Record(ctx context.Context, entry *model.AuditLog) error {
	return l.db.WithContext(ctx).Create(entry).Error
}

// Middleware records every mutating request after it completes, with the
// acting user and bound organization when present. Read requests are not
// audited.
func Middleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				next.ServeHTTP(w, r)
				return
			}

			ww := chmw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			entry := &model.AuditLog{
				Method:    r.Method,
				Path:      r.URL.Path,
				Status:    ww.Status(),
				RequestID: chmw.GetReqID(r.Context()),
			}
			if user := middleware.UserFromContext(r.Context()); user != nil {
				entry.ActorID = &user.ID
			}
			if org := tenant.FromContext(r.Context()); org != nil {
				entry.OrganizationID = &org.ID
			}

			if err := logger.Record(r.Context(), entry); err != nil {
				slog.Warn("recording audit entry", "method", r.Method, "path", r.URL.Path, "error", err)
			}
		})
	}
}
