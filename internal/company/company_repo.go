package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	GetProfile(ctx context.Context) (*Profile, error)
	SaveProfile(ctx context.Context, profile *Profile) error
	ListSlides(ctx context.Context) ([]Slide, error)
	CreateSlide(ctx context.Context, slide *Slide) error
	DeleteSlide(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).First(&profile).Error
	return &profile, err
}

func (r *repository) SaveProfile(ctx context.Context, profile *Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *repository) ListSlides(ctx context.Context) ([]Slide, error) {
	var slides []Slide
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&slides).Error
	return slides, err
}

func (r *repository) CreateSlide(ctx context.Context, slide *Slide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

func (r *repository) DeleteSlide(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Slide{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
