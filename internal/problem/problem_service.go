package problem

import (
	"context"
	"database/sql"
	"time"

	problemerrors "go-plastindo/internal/problem/errors"
	"go-plastindo/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dua kategori masalah karyawan, tidak lebih.
const (
	CategoryWarningLetter   = "WARNING_LETTER"
	CategorySalaryDeduction = "SALARY_DEDUCTION"
)

// Level surat peringatan.
const (
	LevelSP1 = "SP1"
	LevelSP2 = "SP2"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=problem_service.go -destination=mock/problem_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProblemRequest) (ProblemResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ProblemResponse, error)
	GetByID(ctx context.Context, id string) (ProblemResponse, error)
	Update(ctx context.Context, id string, req UpdateProblemRequest) (ProblemResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("problem.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("problem.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// validateCategoryRules menegakkan aturan yang di versi lama hanya tersirat
// di bentuk tipe: level cuma untuk surat peringatan (dan wajib di sana),
// amount cuma untuk potongan gaji (dan wajib di sana).
func validateCategoryRules(category string, level *string, amount *int64) error {
	switch category {
	case CategoryWarningLetter:
		if level == nil || *level == "" {
			return problemerrors.ErrLevelRequired
		}
		if amount != nil {
			return problemerrors.ErrAmountNotAllowed
		}
	case CategorySalaryDeduction:
		if level != nil {
			return problemerrors.ErrLevelNotAllowed
		}
		if amount == nil || *amount <= 0 {
			return problemerrors.ErrAmountRequired
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateProblemRequest) (ProblemResponse, error) {
	// Logger dari middleware sudah membawa request id dan username.
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create problem requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("category", req.Category),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ProblemResponse{}, problemerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ProblemResponse{}, problemerrors.ErrInvalidDateFormat
	}

	if err := validateCategoryRules(req.Category, req.Level, req.Amount); err != nil {
		l.Warn("create problem validation failed", zap.Error(err))
		return ProblemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create problem begin tx failed", zap.Error(err))
		return ProblemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		l.Error("create problem employee check failed", zap.Error(err))
		return ProblemResponse{}, err
	}
	if !exists {
		l.Warn("create problem employee not found",
			zap.String("employee_id", req.EmployeeID),
		)
		return ProblemResponse{}, problemerrors.ErrEmployeeNotFound
	}

	p := &Problem{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Category:   req.Category,
		Level:      req.Level,
		Date:       date,
		Detail:     req.Detail,
		Amount:     req.Amount,
	}

	if err := qtx.Create(ctx, p); err != nil {
		l.Error("create problem persist failed", zap.Error(err))
		return ProblemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("create problem commit failed", zap.Error(err))
		return ProblemResponse{}, err
	}

	l.Info("create problem success",
		zap.String("problem_id", p.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("category", req.Category),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ProblemResponse, error) {
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, problemerrors.ErrInvalidEmployeeID
		}
	}

	problems, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all problems failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(problems), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProblemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProblemResponse{}, problemerrors.ErrInvalidProblemID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProblemResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProblemRequest) (ProblemResponse, error) {
	s.logger.Debug("update problem requested",
		zap.String("problem_id", id),
		zap.String("category", req.Category),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ProblemResponse{}, problemerrors.ErrInvalidProblemID
	}

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ProblemResponse{}, problemerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ProblemResponse{}, problemerrors.ErrInvalidDateFormat
	}

	if err := validateCategoryRules(req.Category, req.Level, req.Amount); err != nil {
		s.logger.Warn("update problem validation failed", zap.Error(err))
		return ProblemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update problem begin tx failed", zap.Error(err))
		return ProblemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update problem fetch existing failed", zap.Error(err))
		return ProblemResponse{}, mapRepositoryError(err)
	}

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return ProblemResponse{}, err
	}
	if !exists {
		return ProblemResponse{}, problemerrors.ErrEmployeeNotFound
	}

	p.EmployeeID = employeeUUID
	p.Category = req.Category
	p.Level = req.Level
	p.Date = date
	p.Detail = req.Detail
	p.Amount = req.Amount

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update problem persist failed", zap.Error(err))
		return ProblemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update problem commit failed", zap.Error(err))
		return ProblemResponse{}, err
	}

	s.logger.Info("update problem success", zap.String("problem_id", id))

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete problem requested", zap.String("problem_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return problemerrors.ErrInvalidProblemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete problem failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete problem success", zap.String("problem_id", id))
	return nil
}

func mapToResponse(p Problem) ProblemResponse {
	resp := ProblemResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Category:   p.Category,
		Level:      p.Level,
		Date:       p.Date.Format(dateLayout),
		Detail:     p.Detail,
		Amount:     p.Amount,
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FullName
	}
	return resp
}

func mapToListResponse(problems []Problem) []ProblemResponse {
	resp := make([]ProblemResponse, len(problems))
	for i, p := range problems {
		resp[i] = mapToResponse(p)
	}
	return resp
}
