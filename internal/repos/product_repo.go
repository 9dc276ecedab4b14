package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"catalogd/internal/domain"
)

// ProductFilter narrows List to equality matches on the given fields.
type ProductFilter struct {
	CategoryID *int64
	Status     string
}

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `
    id, name, price, status, image, types_json, sizes_json, rating, category_id,
    created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List(f ProductFilter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.CategoryID != nil {
		where += ` AND category_id = ?`
		args = append(args, *f.CategoryID)
	}
	if f.Status != "" {
		where += ` AND status = ?`
		args = append(args, f.Status)
	}

	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT`+productColumns+`
  FROM products
  WHERE `+where+`
  ORDER BY id`, args...)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT`+productColumns+`
  FROM products
  WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
  INSERT INTO products(name, price, status, image, types_json, sizes_json, rating, category_id)
  VALUES(?,?,?,?,?,?,?,?)`,
		p.Name, p.Price, p.Status, p.Image, p.Types, p.Sizes, p.Rating, p.CategoryID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.db.Exec(`
  UPDATE products
  SET name=?, price=?, status=?, image=?, types_json=?, sizes_json=?, rating=?, category_id=?,
      updated_at=CURRENT_TIMESTAMP
  WHERE id=?`,
		p.Name, p.Price, p.Status, p.Image, p.Types, p.Sizes, p.Rating, p.CategoryID, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count reports the number of stored products, mainly for tests asserting
// that failed validation never persists a record.
func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}
