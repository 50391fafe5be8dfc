package navigation

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=navigation_service.go -destination=mock/navigation_service_mock.go -package=mock
type Service interface {
	State(ctx context.Context, sessionID string) (StateResponse, error)
	Navigate(ctx context.Context, sessionID string, req NavigateRequest) (StateResponse, error)
	Back(ctx context.Context, sessionID string) (StateResponse, error)
	Login(ctx context.Context, sessionID string) (StateResponse, error)
	Logout(ctx context.Context, sessionID string) (StateResponse, error)
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("navigation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation.service")
	}
	return &service{store: store, logger: l}
}

// load mengembalikan state tersimpan, atau state awal untuk session baru.
func (s *service) load(ctx context.Context, sessionID string) (State, error) {
	stored, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("load navigation state failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return State{}, err
	}
	if stored == nil {
		return NewState(), nil
	}
	return *stored, nil
}

func (s *service) apply(ctx context.Context, sessionID string, mutate func(*State)) (StateResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return StateResponse{}, err
	}

	mutate(&state)

	if err := s.store.Save(ctx, sessionID, state); err != nil {
		s.logger.Error("save navigation state failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return StateResponse{}, err
	}

	return mapToResponse(state), nil
}

func (s *service) State(ctx context.Context, sessionID string) (StateResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return StateResponse{}, err
	}
	return mapToResponse(state), nil
}

func (s *service) Navigate(ctx context.Context, sessionID string, req NavigateRequest) (StateResponse, error) {
	s.logger.Debug("navigate requested",
		zap.String("session_id", sessionID),
		zap.String("page", req.Page),
		zap.Bool("is_back", req.IsBack),
	)
	return s.apply(ctx, sessionID, func(state *State) {
		state.Navigate(req.Page, req.IsBack)
	})
}

func (s *service) Back(ctx context.Context, sessionID string) (StateResponse, error) {
	s.logger.Debug("back requested", zap.String("session_id", sessionID))
	return s.apply(ctx, sessionID, func(state *State) {
		state.GoBack()
	})
}

func (s *service) Login(ctx context.Context, sessionID string) (StateResponse, error) {
	s.logger.Info("navigation session promoted to admin", zap.String("session_id", sessionID))
	return s.apply(ctx, sessionID, func(state *State) {
		state.Login()
	})
}

func (s *service) Logout(ctx context.Context, sessionID string) (StateResponse, error) {
	s.logger.Info("navigation session demoted", zap.String("session_id", sessionID))
	return s.apply(ctx, sessionID, func(state *State) {
		state.Logout()
	})
}

func mapToResponse(state State) StateResponse {
	return StateResponse{
		CurrentPage:        state.CurrentPage,
		History:            state.History,
		AdminAuthenticated: state.AdminAuthenticated,
		Visibility:         state.VisibilityMode(),
	}
}
