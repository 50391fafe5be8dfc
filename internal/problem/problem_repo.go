package problem

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListFilter membatasi hasil FindAll; zero value berarti tanpa filter.
type ListFilter struct {
	EmployeeID string
	Category   string
}

//go:generate mockgen -source=problem_repo.go -destination=mock/problem_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Problem) error
	FindAll(ctx context.Context, filter ListFilter) ([]Problem, error)
	FindByID(ctx context.Context, id string) (*Problem, error)
	Update(ctx context.Context, p *Problem) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang query gorm-nya berjalan di atas
// transaksi milik service, termasuk cek FK ke employees.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	// Session dengan Context meng-clone Statement, jadi ConnPool milik
	// repository dasar tidak ikut tertimpa.
	txdb := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) Create(ctx context.Context, p *Problem) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Problem, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Order("date DESC")

	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var problems []Problem
	err := q.Find(&problems).Error
	return problems, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Problem, error) {
	var p Problem
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Problem) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Problem{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
