package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agustin-pizzeria/order-service/internal/entities"
)

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type catalogService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewCatalogService(logger *slog.Logger, repo ProductRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
	}
}

// ListProducts returns the whole menu ordered by (category, name).
// Grouping into categories is left to the presentation layer.
func (s *catalogService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug("products listed", slog.Int("count", len(products)))
	return products, nil
}
