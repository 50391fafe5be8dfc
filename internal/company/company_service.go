package company

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	companyerrors "go-plastindo/internal/company/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ProfileCacheKey = "company:profile"
	SlidesCacheKey  = "company:slides"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
	GetSlides(ctx context.Context) ([]SlideResponse, error)
	CreateSlide(ctx context.Context, req CreateSlideRequest) (SlideResponse, error)
	DeleteSlide(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetProfile(ctx context.Context) (ProfileResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ProfileCacheKey).Result(); err == nil {
			var resp ProfileResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ProfileCacheKey, func() (interface{}, error) {
		profile, err := s.repo.GetProfile(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ProfileResponse{}, companyerrors.ErrProfileNotFound
			}
			s.logger.Error("get company profile failed", zap.Error(err))
			return ProfileResponse{}, err
		}

		resp := mapProfileToResponse(*profile)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				// konten publik, jarang berubah
				s.rdb.Set(ctx, ProfileCacheKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ProfileResponse{}, err
	}

	return v.(ProfileResponse), nil
}

func (s *service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error) {
	s.logger.Debug("update company profile requested", zap.String("name", req.Name))

	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("update company profile fetch failed", zap.Error(err))
			return ProfileResponse{}, err
		}
		profile = &Profile{ID: uuid.New()}
	}

	profile.Name = req.Name
	profile.Tagline = req.Tagline
	profile.About = req.About
	profile.Address = req.Address
	profile.Phone = req.Phone
	profile.Email = req.Email

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("update company profile persist failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	s.invalidateCache(ctx, ProfileCacheKey)

	s.logger.Info("update company profile success")
	return mapProfileToResponse(*profile), nil
}

func (s *service) GetSlides(ctx context.Context) ([]SlideResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SlidesCacheKey).Result(); err == nil {
			var resp []SlideResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SlidesCacheKey, func() (interface{}, error) {
		slides, err := s.repo.ListSlides(ctx)
		if err != nil {
			s.logger.Error("list slides failed", zap.Error(err))
			return nil, err
		}

		resp := make([]SlideResponse, len(slides))
		for i, sl := range slides {
			resp[i] = mapSlideToResponse(sl)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, SlidesCacheKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]SlideResponse), nil
}

func (s *service) CreateSlide(ctx context.Context, req CreateSlideRequest) (SlideResponse, error) {
	s.logger.Debug("create slide requested", zap.String("title", req.Title))

	imageData, err := normalizeImageData(req.ImageData)
	if err != nil {
		s.logger.Warn("create slide validation failed", zap.Error(err))
		return SlideResponse{}, err
	}

	slide := &Slide{
		ID:        uuid.New(),
		Title:     req.Title,
		Caption:   req.Caption,
		ImageData: imageData,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.CreateSlide(ctx, slide); err != nil {
		s.logger.Error("create slide persist failed", zap.Error(err))
		return SlideResponse{}, err
	}

	s.invalidateCache(ctx, SlidesCacheKey)

	s.logger.Info("create slide success", zap.String("slide_id", slide.ID.String()))
	return mapSlideToResponse(*slide), nil
}

func (s *service) DeleteSlide(ctx context.Context, id string) error {
	s.logger.Debug("delete slide requested", zap.String("slide_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return companyerrors.ErrInvalidSlideID
	}

	if err := s.repo.DeleteSlide(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return companyerrors.ErrSlideNotFound
		}
		s.logger.Error("delete slide failed", zap.Error(err))
		return err
	}

	s.invalidateCache(ctx, SlidesCacheKey)

	s.logger.Info("delete slide success", zap.String("slide_id", id))
	return nil
}

func (s *service) invalidateCache(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate company cache",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

// normalizeImageData menerima base64 dengan atau tanpa prefix data URI,
// sama seperti foto karyawan.
func normalizeImageData(raw string) (string, error) {
	payload := raw
	if idx := strings.Index(raw, "base64,"); idx >= 0 {
		payload = raw[idx+len("base64,"):]
	}

	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", companyerrors.ErrInvalidImageData
	}

	return raw, nil
}

func mapProfileToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		Name:    p.Name,
		Tagline: p.Tagline,
		About:   p.About,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
	}
}

func mapSlideToResponse(sl Slide) SlideResponse {
	return SlideResponse{
		ID:        sl.ID.String(),
		Title:     sl.Title,
		Caption:   sl.Caption,
		ImageData: sl.ImageData,
		SortOrder: sl.SortOrder,
	}
}
