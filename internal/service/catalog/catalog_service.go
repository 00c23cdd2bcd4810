package catalog

import (
	"context"

	"github.com/Domenick1991/vehiclerental/internal/domain"
	"github.com/Domenick1991/vehiclerental/internal/repository"
	"github.com/sirupsen/logrus"
)

type RouteUseCase interface {
	List(ctx context.Context) ([]domain.RoutePrice, error)
	GetByName(ctx context.Context, route string) (*domain.RoutePrice, error)
	VehicleTypes() []domain.VehicleType
}

type RouteCache interface {
	GetRoutes(ctx context.Context) ([]domain.RoutePrice, error)
	SetRoutes(ctx context.Context, routes []domain.RoutePrice) error
}

type CatalogService struct {
	repo  repository.RouteRepository
	cache RouteCache
	log   logrus.FieldLogger
}

// NewCatalogService accepts a nil cache; every List then goes to the repository.
func NewCatalogService(repo repository.RouteRepository, cache RouteCache, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.RoutePrice, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRoutes(ctx)
		if err != nil {
			s.log.WithError(err).Warn("route cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	routes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRoutes(ctx, routes); err != nil {
			s.log.WithError(err).Warn("route cache write failed")
		}
	}
	return routes, nil
}

func (s *CatalogService) GetByName(ctx context.Context, route string) (*domain.RoutePrice, error) {
	return s.repo.GetByName(ctx, route)
}

func (s *CatalogService) VehicleTypes() []domain.VehicleType {
	return append([]domain.VehicleType(nil), domain.VehicleTypes...)
}

var _ RouteUseCase = (*CatalogService)(nil)
