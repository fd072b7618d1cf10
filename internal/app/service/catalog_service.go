package service

import (
	"errors"

	"github.com/novashop/novashop-backend/internal/app/catalog"
	"github.com/novashop/novashop-backend/internal/app/model"
	"github.com/novashop/novashop-backend/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid category")
)

type CatalogService interface {
	ListProducts(selected model.Category) []model.Product
	GetProductByID(id int) (model.Product, error)
	Categories() []model.Category
}

type catalogService struct {
	store *catalog.Store
}

func NewCatalogService(store *catalog.Store) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) ListProducts(selected model.Category) []model.Product {
	logger.Debug("Listing products", map[string]interface{}{
		"category": selected,
	})
	return s.store.FilterByCategory(selected)
}

func (s *catalogService) GetProductByID(id int) (model.Product, error) {
	product, ok := s.store.FindByID(id)
	if !ok {
		logger.Warn("Product not found", map[string]interface{}{
			"product_id": id,
		})
		return model.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) Categories() []model.Category {
	return s.store.Categories()
}
