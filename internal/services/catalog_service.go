package services

import (
	"github.com/shopspring/decimal"

	"catalogd/internal/domain"
	"catalogd/internal/repos"
	"catalogd/internal/validate"
)

// CatalogService orchestrates category and product mutations: lookups happen
// before any write, and product updates merge only the fields the validator
// marked present.
type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetCategory(id int64) (domain.Category, error) {
	return s.Cats.Get(id)
}

func (s *CatalogService) CreateCategory(name string) (domain.Category, error) {
	return s.Cats.Create(name)
}

func (s *CatalogService) UpdateCategory(id int64, name string) (domain.Category, error) {
	if _, err := s.Cats.Get(id); err != nil {
		return domain.Category{}, err
	}
	return s.Cats.Update(id, name)
}

// DeleteCategory removes only the category row. Products keep their
// category_id: it is a weak reference, never cleaned up on delete.
func (s *CatalogService) DeleteCategory(id int64) error {
	return s.Cats.Delete(id)
}

func (s *CatalogService) ListProducts(f repos.ProductFilter) ([]domain.Product, error) {
	return s.Prods.List(f)
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) CreateProduct(in *validate.ProductCreate) (int64, error) {
	price, err := decimal.NewFromString(in.Price.String())
	if err != nil {
		return 0, err
	}
	p := domain.Product{
		Name:       *in.Name,
		Price:      price,
		Status:     *in.Status,
		Image:      *in.Image,
		Types:      *in.Types,
		Sizes:      *in.Sizes,
		Rating:     *in.Rating,
		CategoryID: in.CategoryID,
	}
	return s.Prods.Create(p)
}

// UpdateProduct loads the stored record and overwrites only the fields
// present in the validated payload; absent fields keep their prior values.
func (s *CatalogService) UpdateProduct(id int64, in *validate.ProductUpdate) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}

	p.Name = *in.Name
	price, err := decimal.NewFromString(in.Price.String())
	if err != nil {
		return domain.Product{}, err
	}
	p.Price = price
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Types != nil {
		p.Types = *in.Types
	}
	if in.Sizes != nil {
		p.Sizes = *in.Sizes
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}

	if err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(id)
}

func (s *CatalogService) DeleteProduct(id int64) error {
	return s.Prods.Delete(id)
}
