package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func subscriptionColumns() []string {
	return []string{
		"id", "organization_id", "plan_id", "status",
		"starts_at", "ends_at", "trial_ends_at", "cancelled_at",
		"created_at", "updated_at",
	}
}

func TestSubscriptionCurrentForOrganization(t *testing.T) {
	orgID := uuid.New()

	t.Run("selects the active window ordered by starts_at", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		repo := NewSubscriptionRepository(gdb)

		subID := uuid.New()
		planID := uuid.New()
		now := time.Now()
		endsAt := now.Add(30 * 24 * time.Hour)

		mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE organization_id = \$1 AND status = \$2 AND \(ends_at IS NULL OR ends_at > \$3\) ORDER BY starts_at DESC`).
			WillReturnRows(sqlmock.NewRows(subscriptionColumns()).
				AddRow(subID, orgID, planID, "active", now.Add(-24*time.Hour), endsAt, nil, nil, now, now))

		mock.ExpectQuery(`SELECT \* FROM "plans" WHERE "plans"\."id" = \$1`).
			WithArgs(planID).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "name", "slug", "description", "member_limit", "price", "billing_cycle", "is_active", "sort_order", "created_at", "updated_at"}).
				AddRow(planID, "Pro", "pro", "", 10, "99.00", "monthly", true, 1, now, now))

		sub, err := repo.CurrentForOrganization(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, subID, sub.ID)
		assert.Equal(t, "pro", sub.Plan.Slug)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active row maps to not found", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		repo := NewSubscriptionRepository(gdb)

		mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).
			WillReturnRows(sqlmock.NewRows(subscriptionColumns()))

		_, err := repo.CurrentForOrganization(context.Background(), orgID)
		assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubscriptionSupersede(t *testing.T) {
	orgID := uuid.New()
	planID := uuid.New()

	t.Run("locks, cancels actives, inserts the new row in one transaction", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		repo := NewSubscriptionRepository(gdb)

		now := time.Now()
		endsAt := now.AddDate(0, 1, 0)
		sub := &model.Subscription{
			OrganizationID: orgID,
			PlanID:         planID,
			Status:         model.SubscriptionActive,
			StartsAt:       now,
			EndsAt:         &endsAt,
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE organization_id = \$1 FOR UPDATE`).
			WithArgs(orgID).
			WillReturnRows(sqlmock.NewRows(subscriptionColumns()).
				AddRow(uuid.New(), orgID, planID, "active", now.AddDate(0, -1, 0), now.AddDate(0, 0, 5), nil, nil, now, now))
		mock.ExpectExec(`UPDATE "subscriptions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		require.NoError(t, repo.Supersede(context.Background(), sub))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		gdb, mock := newMockGorm(t)
		repo := NewSubscriptionRepository(gdb)

		now := time.Now()
		sub := &model.Subscription{
			OrganizationID: orgID,
			PlanID:         planID,
			Status:         model.SubscriptionActive,
			StartsAt:       now,
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE organization_id = \$1 FOR UPDATE`).
			WithArgs(orgID).
			WillReturnRows(sqlmock.NewRows(subscriptionColumns()))
		mock.ExpectExec(`UPDATE "subscriptions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`INSERT INTO "subscriptions"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Supersede(context.Background(), sub)
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
