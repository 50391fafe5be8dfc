package employee

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	employeeerrors "go-plastindo/internal/employee/errors"
	"go-plastindo/internal/events"
	"go-plastindo/internal/messaging/kafka"
	"go-plastindo/internal/shared/apperror"
	"go-plastindo/internal/shared/contextutil"
	"go-plastindo/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]OptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("full_name", req.FullName),
		zap.String("department", req.Department),
	)

	hireDate, birthDate, photoData, err := validateEmployeeFields(req.HireDate, req.BirthDate, req.PhotoData)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.AttendanceNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "attendance_number")
		if err != nil {
			s.logger.Error("create employee generate attendance number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.AttendanceNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:               uuid.New(),
		FullName:         req.FullName,
		AttendanceNumber: req.AttendanceNumber,
		HireDate:         hireDate,
		EmploymentStatus: req.EmploymentStatus,
		Department:       req.Department,
		Education:        req.Education,
		Religion:         req.Religion,
		Gender:           req.Gender,
		BirthPlace:       req.BirthPlace,
		BirthDate:        birthDate,
		MaritalStatus:    req.MaritalStatus,
		Phone:            req.Phone,
		Address:          req.Address,
		PhotoData:        photoData,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeLifecycleEvent{
			EventType:  events.EmployeeCreated,
			RequestID:  rid, // propagasi ke async events
			Actor:      contextutil.GetUserID(ctx),
			EmployeeID: empl.ID.String(),
			FullName:   empl.FullName,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("attendance_number", empl.AttendanceNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]OptionResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight agar cache miss serentak hanya satu yang ke database
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]OptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = OptionResponse{
				ID:               e.ID.String(),
				FullName:         e.FullName,
				AttendanceNumber: e.AttendanceNumber,
			}
		}

		// 3. Simpan ke Redis (data master, TTL 1 jam cukup)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]OptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	hireDate, birthDate, photoData, err := validateEmployeeFields(req.HireDate, req.BirthDate, req.PhotoData)
	if err != nil {
		s.logger.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.AttendanceNumber = req.AttendanceNumber
	empl.HireDate = hireDate
	empl.EmploymentStatus = req.EmploymentStatus
	empl.Department = req.Department
	empl.Education = req.Education
	empl.Religion = req.Religion
	empl.Gender = req.Gender
	empl.BirthPlace = req.BirthPlace
	empl.BirthDate = birthDate
	empl.MaritalStatus = req.MaritalStatus
	empl.Phone = req.Phone
	empl.Address = req.Address
	empl.PhotoData = photoData

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeLifecycleEvent{
			EventType:  events.EmployeeDeleted,
			RequestID:  rid,
			Actor:      contextutil.GetUserID(ctx),
			EmployeeID: id,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   id,
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("delete employee outbox persist failed",
				zap.String("employee_id", id),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func validateEmployeeFields(hireDateRaw, birthDateRaw, photoRaw string) (time.Time, time.Time, string, error) {
	hireDate, err := time.Parse(dateLayout, hireDateRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "", employeeerrors.ErrInvalidHireDate
	}

	var birthDate time.Time
	if birthDateRaw != "" {
		birthDate, err = time.Parse(dateLayout, birthDateRaw)
		if err != nil {
			return time.Time{}, time.Time{}, "", employeeerrors.ErrInvalidBirthDate
		}
	}

	photoData, err := normalizePhotoData(photoRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}

	return hireDate, birthDate, photoData, nil
}

// normalizePhotoData menerima string base64, dengan atau tanpa prefix data
// URI. Foto di-encode di sisi klien; di sini hanya dicek bisa di-decode.
func normalizePhotoData(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	payload := raw
	if idx := strings.Index(raw, "base64,"); idx >= 0 {
		payload = raw[idx+len("base64,"):]
	}

	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", apperror.Wrap(err, apperror.CodeInvalidInput, "Photo data is not valid base64", http.StatusBadRequest)
	}

	return raw, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               empl.ID.String(),
		FullName:         empl.FullName,
		AttendanceNumber: empl.AttendanceNumber,
		HireDate:         empl.HireDate.Format(dateLayout),
		EmploymentStatus: empl.EmploymentStatus,
		Department:       empl.Department,
		Education:        empl.Education,
		Religion:         empl.Religion,
		Gender:           empl.Gender,
		BirthPlace:       empl.BirthPlace,
		MaritalStatus:    empl.MaritalStatus,
		Phone:            empl.Phone,
		Address:          empl.Address,
		PhotoData:        empl.PhotoData,
		CreatedAt:        empl.CreatedAt.UTC().Format(time.RFC3339),
	}
	if !empl.BirthDate.IsZero() {
		resp.BirthDate = empl.BirthDate.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
