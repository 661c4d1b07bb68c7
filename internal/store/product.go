package store

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/database"
	"storefront/internal/model"
)

const productColumns = `id, name, description, price, category, in_stock, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.InStock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, id string) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", mapError(err))
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	id, err := NewID()
	if err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	row := db.QueryRow(ctx,
		`INSERT INTO products (id, name, description, price, category, in_stock)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		id,
		p.Name,
		p.Description,
		p.Price,
		p.Category,
		p.InStock,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", mapError(err))
	}
	p.ID = id
	return p, nil
}

// ProductPatch is a partial update; nil fields stay untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// Empty reports whether the patch carries no recognized fields.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.InStock == nil
}

// UpdateProduct applies the patch, refreshes updated_at and returns the
// resulting record. ErrNotFound means the record no longer exists.
func UpdateProduct(ctx context.Context, db database.DB, id string, patch ProductPatch) (*model.Product, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.InStock != nil {
		add("in_stock", *patch.InStock)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	row := db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
			strings.Join(sets, ", "), len(args)),
		args...,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", mapError(err))
	}
	return p, nil
}

func DeleteProduct(ctx context.Context, db database.DB, id string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", ErrNotFound)
	}
	return nil
}
