package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tekki/internal/model"
	"tekki/internal/repository"
)

func TestApplicationPostgres_CreateRereadsJoinedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	app := &model.JobApplication{
		ID:        "app-1",
		JobID:     "job-1",
		FullName:  "Awa Diop",
		Email:     "awa@example.com",
		Phone:     "+221770000000",
		ResumeKey: "resumes/x.pdf",
		Status:    model.ApplicationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO job_applications").
		WithArgs(app.ID, app.JobID, app.FullName, app.Email, app.Phone, app.ResumeKey, "", "", "", "pending", "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM job_applications a LEFT JOIN job_openings j ON j.id = a.job_id WHERE a.id = ?").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "title", "full_name", "email", "phone", "resume_key", "cover_letter", "linkedin_url", "portfolio_url", "status", "notes", "created_at", "updated_at"}).
			AddRow("app-1", "job-1", "Designer", "Awa Diop", "awa@example.com", "+221770000000", "resumes/x.pdf", "", "", "", "pending", "", now, now))

	out, err := NewApplicationPostgres(db).Create(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "Designer", out.JobTitle)
	assert.Equal(t, model.ApplicationPending, out.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE job_applications SET status").
		WithArgs("app-1", "interview", "call on monday").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewApplicationPostgres(db).UpdateStatus(context.Background(), "app-1", model.ApplicationInterview, "call on monday")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeadPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()
	cols := []string{"id", "full_name", "email", "phone", "company", "formula", "source", "message", "status", "notes", "created_at", "updated_at"}

	t.Run("create", func(t *testing.T) {
		lead := &model.Lead{ID: "l1", FullName: "Moussa Fall", Email: "m@example.com", Formula: "starter", Status: model.LeadNew, CreatedAt: now, UpdatedAt: now}
		mock.ExpectQuery("INSERT INTO leads").
			WithArgs("l1", "Moussa Fall", "m@example.com", "", "", "starter", "", "", "new", "", now, now).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("l1", "Moussa Fall", "m@example.com", "", "", "starter", "", "", "new", "", now, now))

		out, err := repo.Create(ctx, lead)
		require.NoError(t, err)
		assert.Equal(t, model.LeadNew, out.Status)
	})

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM leads ORDER BY").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("l1", "Moussa Fall", "m@example.com", "", "", "starter", "", "", "new", "", now, now).
				AddRow("l2", "Awa Diop", "a@example.com", "", "", "premium", "", "", "converted", "", now, now))

		leads, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, leads, 2)
		assert.Equal(t, model.LeadConverted, leads[1].Status)
	})

	t.Run("list scan error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM leads ORDER BY").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("l1", "Moussa Fall", "m@example.com", "", "", "starter", "", "", "new", "", "not-a-time", now))

		_, err := repo.List(ctx)
		assert.Error(t, err)
	})

	t.Run("update status missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE leads SET status").
			WithArgs("missing", "contacted", "").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "missing", model.LeadContacted, "")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM leads ORDER BY").WillReturnError(errors.New("boom"))
		_, err := repo.List(ctx)
		assert.EqualError(t, err, "boom")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE enrollments SET status").
		WithArgs("e1", "confirmed", "paid", "wave ref 123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewEnrollmentPostgres(db).UpdateStatus(context.Background(), "e1", model.EnrollmentConfirmed, model.PaymentPaid, "wave ref 123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM enrollments WHERE id = ?").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "phone", "country", "city", "formula", "amount", "payment_status", "status", "notes", "created_at", "updated_at"}).
			AddRow("e1", "Fatou", "f@example.com", "770000000", "Senegal", "Dakar", "business", int64(650000), "paid", "confirmed", "", now, now))

	e, err := NewEnrollmentPostgres(db).FindByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(650000), e.Amount)
	assert.Equal(t, model.PaymentPaid, e.PaymentStatus)
}

func TestBusinessPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBusinessPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE businesses SET image_key").
		WithArgs("b1", "businesses/k.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SetImage(ctx, "b1", "businesses/k.jpg"))

	mock.ExpectExec("UPDATE businesses SET status").
		WithArgs("b1", "sold").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateStatus(ctx, "b1", model.BusinessSold))

	mock.ExpectExec("DELETE FROM businesses WHERE id = ?").
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "b1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM brands ORDER BY featured DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "category", "description", "logo_url", "website_url", "featured", "created_at"}).
			AddRow("br1", "Viens on s'connait", "vosc", "Cosmetics", "", "", "", true, now))

	brands, err := NewBrandPostgres(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.True(t, brands[0].Featured)
}

func TestBusinessPostgres_UpdateWritesStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	b := &model.Business{ID: "b1", Name: "Boutique Wax", Slug: "boutique-wax-b1", Price: 900000, Status: model.BusinessReserved, UpdatedAt: now}
	mock.ExpectQuery("UPDATE businesses SET (.+) status = \\$8, updated_at = \\$9 WHERE id = \\$1 RETURNING").
		WithArgs("b1", "Boutique Wax", "boutique-wax-b1", "", "", int64(900000), int64(0), "reserved", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "category", "description", "price", "monthly_revenue", "image_key", "status", "created_at", "updated_at"}).
			AddRow("b1", "Boutique Wax", "boutique-wax-b1", "", "", int64(900000), int64(0), "", "reserved", now, now))

	got, err := NewBusinessPostgres(db).Update(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, model.BusinessReserved, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandPostgres_CreateDuplicateSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO brands").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "brands_slug_key"})

	_, err = NewBrandPostgres(db).Create(context.Background(), &model.Brand{ID: "br1", Name: "Zeyna", Slug: "zeyna-br1", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.ErrorContains(t, err, "brands_slug_key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(sql.ErrNoRows), sql.ErrNoRows)
	assert.NotErrorIs(t, translate(&pgconn.PgError{Code: "23503"}), repository.ErrDuplicate)
	assert.ErrorIs(t, translate(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})), repository.ErrDuplicate)
}
