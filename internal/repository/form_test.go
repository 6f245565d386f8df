package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kpa-platform/form-service/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func formRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "employee_id", "employee_name", "department", "designation",
		"performance_period", "kpa_title", "kpa_description",
		"target_value", "achieved_value", "weightage", "score", "remarks",
		"created_by", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(
			id, "EMP001", "Asha Verma", "Operations", "Manager",
			"Q1-2024", "Throughput", "Units processed per quarter",
			85.0, 90.0, 20.0, 20.0, nil,
			uuid.New(), time.Now(), time.Now(),
		)
	}
	return rows
}

// Both queries in List are generated from the one shared filter scope; this
// pins the count predicates and the page predicates to the same bound SQL so
// a divergence fails loudly.
func TestList_FilterParityBetweenCountAndPage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	const whereClause = `WHERE employee_id = \$1 AND LOWER\(department\) LIKE \$2`

	mock.ExpectQuery(`SELECT count\(\*\) FROM "kpa_forms" `+whereClause).
		WithArgs("EMP001", "%ops%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(`SELECT \* FROM "kpa_forms" `+whereClause+` ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("EMP001", "%ops%", 5, 5).
		WillReturnRows(formRows(uuid.New(), uuid.New()))

	filter := ListFilter{EmployeeID: "EMP001", Department: "Ops"}
	forms, total, err := repo.List(context.Background(), filter, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, forms, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "kpa_forms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// Page 1 has a zero offset, which is omitted from the SQL.
	mock.ExpectQuery(`SELECT \* FROM "kpa_forms" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(formRows(uuid.New(), uuid.New(), uuid.New()))

	forms, total, err := repo.List(context.Background(), ListFilter{}, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, forms, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmployeeFilterOnly(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "kpa_forms" WHERE employee_id = \$1`).
		WithArgs("EMP002").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "kpa_forms" WHERE employee_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("EMP002", 10).
		WillReturnRows(formRows(uuid.New()))

	forms, total, err := repo.List(context.Background(), ListFilter{EmployeeID: "EMP002"}, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, forms, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_CountFault(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "kpa_forms"`).
		WillReturnError(assert.AnError)

	_, _, err := repo.List(context.Background(), ListFilter{}, 1, 10)
	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "kpa_forms" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(formRows(id))

	form, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, form.ID)
	assert.Equal(t, "EMP001", form.EmployeeID)
	require.NotNil(t, form.Score)
	assert.Equal(t, 20.0, *form.Score)
}

func TestFindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "kpa_forms" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(formRows())

	form, err := repo.FindByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, form)
}

func TestCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "kpa_forms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectCommit()

	score := 16.0
	form := models.KPAForm{
		EmployeeID:        "EMP001",
		EmployeeName:      "Asha Verma",
		Department:        "Operations",
		Designation:       "Manager",
		PerformancePeriod: "Q1-2024",
		KPATitle:          "Throughput",
		TargetValue:       100,
		AchievedValue:     80,
		Weightage:         20,
		Score:             &score,
		CreatedBy:         uuid.New(),
	}

	err := repo.Create(context.Background(), &form)

	require.NoError(t, err)
	assert.Equal(t, id, form.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Fault(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "kpa_forms"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	score := 16.0
	form := models.KPAForm{EmployeeID: "EMP001", Score: &score}

	err := repo.Create(context.Background(), &form)
	assert.Error(t, err)
}
