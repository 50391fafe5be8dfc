package problem_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-plastindo/internal/problem"
	problemerrors "go-plastindo/internal/problem/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProblemRepo struct {
	WithTxFn         func(tx *sql.Tx) problem.Repository
	CreateFn         func(ctx context.Context, p *problem.Problem) error
	FindAllFn        func(ctx context.Context, filter problem.ListFilter) ([]problem.Problem, error)
	FindByIDFn       func(ctx context.Context, id string) (*problem.Problem, error)
	UpdateFn         func(ctx context.Context, p *problem.Problem) error
	DeleteFn         func(ctx context.Context, id string) error
	EmployeeExistsFn func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeProblemRepo) WithTx(tx *sql.Tx) problem.Repository {
	if f.WithTxFn != nil {
		return f.WithTxFn(tx)
	}
	return f
}
func (f *fakeProblemRepo) Create(ctx context.Context, p *problem.Problem) error {
	return f.CreateFn(ctx, p)
}
func (f *fakeProblemRepo) FindAll(ctx context.Context, filter problem.ListFilter) ([]problem.Problem, error) {
	return f.FindAllFn(ctx, filter)
}
func (f *fakeProblemRepo) FindByID(ctx context.Context, id string) (*problem.Problem, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeProblemRepo) Update(ctx context.Context, p *problem.Problem) error {
	return f.UpdateFn(ctx, p)
}
func (f *fakeProblemRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeProblemRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.EmployeeExistsFn(ctx, employeeID)
}

func setupDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func warningLetterRequest(employeeID string) problem.CreateProblemRequest {
	return problem.CreateProblemRequest{
		EmployeeID: employeeID,
		Category:   problem.CategoryWarningLetter,
		Level:      strPtr(problem.LevelSP1),
		Date:       "2025-03-10",
		Detail:     "Terlambat 3 hari berturut-turut",
	}
}

func salaryDeductionRequest(employeeID string) problem.CreateProblemRequest {
	return problem.CreateProblemRequest{
		EmployeeID: employeeID,
		Category:   problem.CategorySalaryDeduction,
		Date:       "2025-03-10",
		Amount:     int64Ptr(150000),
	}
}

func TestProblemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("warning letter success", func(t *testing.T) {
		db, mock := setupDB(t)
		employeeID := uuid.New().String()

		repo := &fakeProblemRepo{
			EmployeeExistsFn: func(ctx context.Context, id string) (bool, error) {
				assert.Equal(t, employeeID, id)
				return true, nil
			},
			CreateFn: func(ctx context.Context, p *problem.Problem) error {
				assert.Equal(t, problem.CategoryWarningLetter, p.Category)
				assert.Equal(t, problem.LevelSP1, *p.Level)
				assert.Nil(t, p.Amount)
				return nil
			},
		}

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := problem.NewService(db, repo)
		resp, err := svc.Create(ctx, warningLetterRequest(employeeID))

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-10", resp.Date)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("salary deduction success", func(t *testing.T) {
		db, mock := setupDB(t)
		employeeID := uuid.New().String()

		repo := &fakeProblemRepo{
			EmployeeExistsFn: func(ctx context.Context, id string) (bool, error) { return true, nil },
			CreateFn: func(ctx context.Context, p *problem.Problem) error {
				assert.Nil(t, p.Level)
				assert.Equal(t, int64(150000), *p.Amount)
				return nil
			},
		}

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := problem.NewService(db, repo)
		_, err := svc.Create(ctx, salaryDeductionRequest(employeeID))

		assert.NoError(t, err)
	})

	t.Run("warning letter without level rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		req := warningLetterRequest(uuid.New().String())
		req.Level = nil

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, problemerrors.ErrLevelRequired)
	})

	t.Run("warning letter with amount rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		req := warningLetterRequest(uuid.New().String())
		req.Amount = int64Ptr(5000)

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, problemerrors.ErrAmountNotAllowed)
	})

	t.Run("salary deduction with level rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		req := salaryDeductionRequest(uuid.New().String())
		req.Level = strPtr(problem.LevelSP2)

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, problemerrors.ErrLevelNotAllowed)
	})

	t.Run("salary deduction without amount rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		req := salaryDeductionRequest(uuid.New().String())
		req.Amount = nil

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, problemerrors.ErrAmountRequired)
	})

	t.Run("unknown employee rejected", func(t *testing.T) {
		db, mock := setupDB(t)

		repo := &fakeProblemRepo{
			EmployeeExistsFn: func(ctx context.Context, id string) (bool, error) { return false, nil },
		}

		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := problem.NewService(db, repo)
		_, err := svc.Create(ctx, warningLetterRequest(uuid.New().String()))

		assert.ErrorIs(t, err, problemerrors.ErrEmployeeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed employee id rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.Create(ctx, warningLetterRequest("not-a-uuid"))

		assert.ErrorIs(t, err, problemerrors.ErrInvalidEmployeeID)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		req := warningLetterRequest(uuid.New().String())
		req.Date = "10/03/2025"

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, problemerrors.ErrInvalidDateFormat)
	})
}

func TestProblemService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter and maps employee name", func(t *testing.T) {
		db, _ := setupDB(t)
		employeeID := uuid.New()

		repo := &fakeProblemRepo{
			FindAllFn: func(ctx context.Context, filter problem.ListFilter) ([]problem.Problem, error) {
				assert.Equal(t, employeeID.String(), filter.EmployeeID)
				assert.Equal(t, problem.CategoryWarningLetter, filter.Category)
				return []problem.Problem{
					{
						ID:         uuid.New(),
						EmployeeID: employeeID,
						Category:   problem.CategoryWarningLetter,
						Level:      strPtr(problem.LevelSP1),
						Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		svc := problem.NewService(db, repo)
		resp, err := svc.GetAll(ctx, problem.ListFilter{
			EmployeeID: employeeID.String(),
			Category:   problem.CategoryWarningLetter,
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, problem.LevelSP1, *resp[0].Level)
	})

	t.Run("malformed employee filter rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		svc := problem.NewService(db, &fakeProblemRepo{})
		_, err := svc.GetAll(ctx, problem.ListFilter{EmployeeID: "abc"})

		assert.ErrorIs(t, err, problemerrors.ErrInvalidEmployeeID)
	})
}

func TestProblemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success switching category resets level", func(t *testing.T) {
		db, mock := setupDB(t)
		problemID := uuid.New()
		employeeID := uuid.New()

		repo := &fakeProblemRepo{
			FindByIDFn: func(ctx context.Context, id string) (*problem.Problem, error) {
				return &problem.Problem{
					ID:         problemID,
					EmployeeID: employeeID,
					Category:   problem.CategoryWarningLetter,
					Level:      strPtr(problem.LevelSP1),
					Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				}, nil
			},
			EmployeeExistsFn: func(ctx context.Context, id string) (bool, error) { return true, nil },
			UpdateFn: func(ctx context.Context, p *problem.Problem) error {
				assert.Equal(t, problem.CategorySalaryDeduction, p.Category)
				assert.Nil(t, p.Level)
				assert.Equal(t, int64(200000), *p.Amount)
				return nil
			},
		}

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := problem.NewService(db, repo)
		resp, err := svc.Update(ctx, problemID.String(), problem.UpdateProblemRequest{
			EmployeeID: employeeID.String(),
			Category:   problem.CategorySalaryDeduction,
			Date:       "2025-04-01",
			Amount:     int64Ptr(200000),
		})

		assert.NoError(t, err)
		assert.Equal(t, problem.CategorySalaryDeduction, resp.Category)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupDB(t)

		repo := &fakeProblemRepo{
			FindByIDFn: func(ctx context.Context, id string) (*problem.Problem, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := problem.NewService(db, repo)
		_, err := svc.Update(ctx, uuid.New().String(), problem.UpdateProblemRequest{
			EmployeeID: uuid.New().String(),
			Category:   problem.CategoryWarningLetter,
			Level:      strPtr(problem.LevelSP1),
			Date:       "2025-04-01",
		})

		assert.ErrorIs(t, err, problemerrors.ErrProblemNotFound)
	})
}

func TestProblemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := setupDB(t)
		id := uuid.New().String()

		repo := &fakeProblemRepo{
			DeleteFn: func(ctx context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := problem.NewService(db, repo)
		err := svc.Delete(ctx, id)

		assert.NoError(t, err)
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		db, _ := setupDB(t)

		svc := problem.NewService(db, &fakeProblemRepo{})
		err := svc.Delete(ctx, "nope")

		assert.ErrorIs(t, err, problemerrors.ErrInvalidProblemID)
	})
}
