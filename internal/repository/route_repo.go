package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/vehiclerental/config"
	"github.com/Domenick1991/vehiclerental/internal/domain"
)

var ErrRouteNotFound = errors.New("route not found")

type RouteRepository interface {
	List(ctx context.Context) ([]domain.RoutePrice, error)
	GetByName(ctx context.Context, route string) (*domain.RoutePrice, error)
}

// ConfigRouteRepository serves the published price table from configuration.
type ConfigRouteRepository struct {
	routes []domain.RoutePrice
}

func NewRouteRepository(routes []config.RouteConfig) RouteRepository {
	out := make([]domain.RoutePrice, 0, len(routes))
	for _, r := range routes {
		out = append(out, domain.RoutePrice{
			Route:       r.Route,
			VanPriceLKR: r.VanPriceLKR,
			CarPriceLKR: r.CarPriceLKR,
		})
	}
	return &ConfigRouteRepository{routes: out}
}

func (r *ConfigRouteRepository) List(ctx context.Context) ([]domain.RoutePrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.RoutePrice(nil), r.routes...), nil
}

func (r *ConfigRouteRepository) GetByName(ctx context.Context, route string) (*domain.RoutePrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, rp := range r.routes {
		if strings.EqualFold(rp.Route, route) {
			found := rp
			return &found, nil
		}
	}
	return nil, ErrRouteNotFound
}

var _ RouteRepository = (*ConfigRouteRepository)(nil)
