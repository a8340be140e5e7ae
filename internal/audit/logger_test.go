package audit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitvara/backoffice/internal/audit"
	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []*model.AuditLog
}

func (l *recordingLogger) Record(ctx context.Context, entry *model.AuditLog) error {
	l.entries = append(l.entries, entry)
	return nil
}

func TestAuditMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("records mutating requests with actor and organization", func(t *testing.T) {
		logger := &recordingLogger{}
		user := &model.User{ID: uuid.New()}
		org := &model.Organization{ID: uuid.New()}

		req := httptest.NewRequest(http.MethodPost, "/api/clients", nil)
		ctx := middleware.WithUser(req.Context(), user)
		ctx = tenant.WithOrganization(ctx, org)
		req = req.WithContext(ctx)

		audit.Middleware(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

		require.Len(t, logger.entries, 1)
		entry := logger.entries[0]
		assert.Equal(t, http.MethodPost, entry.Method)
		assert.Equal(t, "/api/clients", entry.Path)
		assert.Equal(t, http.StatusCreated, entry.Status)
		assert.Equal(t, user.ID, *entry.ActorID)
		assert.Equal(t, org.ID, *entry.OrganizationID)
	})

	t.Run("read requests are not audited", func(t *testing.T) {
		logger := &recordingLogger{}

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		audit.Middleware(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.Empty(t, logger.entries)
	})

	t.Run("missing actor and organization stay null", func(t *testing.T) {
		logger := &recordingLogger{}

		req := httptest.NewRequest(http.MethodDelete, "/api/organizations/abc", nil)
		audit.Middleware(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

		require.Len(t, logger.entries, 1)
		assert.Nil(t, logger.entries[0].ActorID)
		assert.Nil(t, logger.entries[0].OrganizationID)
	})
}
