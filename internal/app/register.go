package app

import (
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// Dependencies are the collaborators the request handlers need.
type Dependencies struct {
	Categories  repo.CategoryRepository
	Products    repo.ProductRepository
	Metrics     repo.MetricsRepository
	Clock       clock.Clock
	MaxPageSize int
}

// Register binds every query and command handler to m.
func Register(m *mediator.Mediator, deps Dependencies) {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}

	mediator.Register[GetProductsQuery, []ProductResult](m, NewGetProductsHandler(deps.Products, deps.MaxPageSize))
	mediator.Register[GetProductByIDQuery, *ProductResult](m, &GetProductByIDHandler{products: deps.Products})
	mediator.Register[GetAllCategoriesQuery, []CategoryResult](m, &GetAllCategoriesHandler{categories: deps.Categories})
	mediator.Register[GetCategoryByIDQuery, *CategoryResult](m, &GetCategoryByIDHandler{categories: deps.Categories})
	if deps.Metrics != nil {
		mediator.Register[GetCatalogMetricsQuery, repo.Metrics](m, &GetCatalogMetricsHandler{metrics: deps.Metrics})
	}

	cc := &categoryCommands{categories: deps.Categories, products: deps.Products, clock: deps.Clock}
	mediator.Register[AddCategoryCommand, CategoryResult](m, mediator.HandlerFunc[AddCategoryCommand, CategoryResult](cc.add))
	mediator.Register[UpdateCategoryCommand, CategoryResult](m, mediator.HandlerFunc[UpdateCategoryCommand, CategoryResult](cc.update))
	mediator.Register[DeleteCategoryCommand, Unit](m, mediator.HandlerFunc[DeleteCategoryCommand, Unit](cc.delete))

	pc := &productCommands{categories: deps.Categories, products: deps.Products, clock: deps.Clock}
	mediator.Register[AddProductCommand, ProductResult](m, mediator.HandlerFunc[AddProductCommand, ProductResult](pc.add))
	mediator.Register[UpdateProductCommand, ProductResult](m, mediator.HandlerFunc[UpdateProductCommand, ProductResult](pc.update))
	mediator.Register[DeleteProductCommand, Unit](m, mediator.HandlerFunc[DeleteProductCommand, Unit](pc.delete))
}
