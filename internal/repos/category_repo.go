package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"catalogd/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `
  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
  FROM categories
  ORDER BY id
`)
	return out, err
}

func (r *CategoryRepo) Get(id int64) (domain.Category, error) {
	var cat domain.Category
	err := r.db.Get(&cat, `
  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
  FROM categories
  WHERE id = ?
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return cat, domain.ErrNotFound
	}
	return cat, err
}

func (r *CategoryRepo) Create(name string) (domain.Category, error) {
	res, err := r.db.Exec(`INSERT INTO categories(name) VALUES(?)`, name)
	if err != nil {
		return domain.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}
	return r.Get(id)
}

func (r *CategoryRepo) Update(id int64, name string) (domain.Category, error) {
	res, err := r.db.Exec(`UPDATE categories SET name=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, name, id)
	if err != nil {
		return domain.Category{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Category{}, domain.ErrNotFound
	}
	return r.Get(id)
}

func (r *CategoryRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
