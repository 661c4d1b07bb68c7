package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeProductRow implements pgx.Row for single-product scans.
type fakeProductRow struct {
	scanErr error
	product *model.Product
	created time.Time
	updated time.Time
}

func (r *fakeProductRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 8:
		// full row: id, name, description, price, category, in_stock, created_at, updated_at
		p := r.product
		*dest[0].(*string) = p.ID
		*dest[1].(*string) = p.Name
		*dest[2].(*string) = p.Description
		*dest[3].(*float64) = p.Price
		*dest[4].(*string) = p.Category
		*dest[5].(*bool) = p.InStock
		*dest[6].(*time.Time) = p.CreatedAt
		*dest[7].(*time.Time) = p.UpdatedAt
	case 2:
		// CreateProduct: created_at, updated_at
		*dest[0].(*time.Time) = r.created
		*dest[1].(*time.Time) = r.updated
	default:
		panic("fakeProductRow.Scan: unexpected number of dest")
	}
	return nil
}

type fakeProductRows struct {
	data    []model.Product
	idx     int
	scanErr error
	err     error
}

func (r *fakeProductRows) Close()                                       {}
func (r *fakeProductRows) Err() error                                   { return r.err }
func (r *fakeProductRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeProductRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeProductRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeProductRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.data[r.idx]
	r.idx++
	return (&fakeProductRow{product: &p}).Scan(dest...)
}
func (r *fakeProductRows) Values() ([]any, error) { return nil, nil }
func (r *fakeProductRows) RawValues() [][]byte    { return nil }
func (r *fakeProductRows) Conn() *pgx.Conn        { return nil }

func TestListProducts(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Product{
		ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "Pen", Description: "",
		Price: 1.5, Category: "general", InStock: true,
		CreatedAt: now, UpdatedAt: now,
	}

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeProductRows{data: []model.Product{sample}}, nil
			},
		}
		products, err := ListProducts(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, []model.Product{sample}, products)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("q")
			},
		}
		_, err := ListProducts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeProductRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListProducts(context.Background(), db)
		require.Error(t, err)
	})
}

func TestGetProductByID(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Product{
		ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "Pen", Price: 1.5,
		Category: "general", InStock: true, CreatedAt: now, UpdatedAt: now,
	}

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, sample.ID, args[0])
				return &fakeProductRow{product: &sample}
			},
		}
		p, err := GetProductByID(context.Background(), db, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample, *p)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProductRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetProductByID(context.Background(), db, sample.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateProduct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("ok", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeProductRow{created: now, updated: now}
			},
		}
		p, err := CreateProduct(context.Background(), db, &model.Product{
			Name: "Pen", Price: 1.5, Category: "general", InStock: true,
		})
		require.NoError(t, err)
		require.True(t, ValidID(p.ID))
		require.Equal(t, p.ID, gotArgs[0])
		require.Equal(t, "Pen", gotArgs[1])
		require.Equal(t, p.CreatedAt, p.UpdatedAt)
	})

	t.Run("insert error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProductRow{scanErr: errors.New("insert")}
			},
		}
		_, err := CreateProduct(context.Background(), db, &model.Product{Name: "Pen"})
		require.Error(t, err)
	})
}

func TestUpdateProduct(t *testing.T) {
	now := time.Now().UTC()
	id := "aaaaaaaaaaaaaaaaaaaaaaaa"

	t.Run("partial patch builds partial SET", func(t *testing.T) {
		price := 2.5
		inStock := false
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL = sql
				gotArgs = args
				return &fakeProductRow{product: &model.Product{
					ID: id, Name: "Pen", Price: price, Category: "general",
					InStock: inStock, CreatedAt: now, UpdatedAt: now.Add(time.Second),
				}}
			},
		}
		p, err := UpdateProduct(context.Background(), db, id, ProductPatch{
			Price: &price, InStock: &inStock,
		})
		require.NoError(t, err)
		require.Equal(t, price, p.Price)
		require.Contains(t, gotSQL, "price = $1")
		require.Contains(t, gotSQL, "in_stock = $2")
		require.Contains(t, gotSQL, "updated_at = now()")
		require.NotContains(t, gotSQL, "name =")
		require.Equal(t, []any{price, inStock, id}, gotArgs)
	})

	t.Run("vanished record", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProductRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateProduct(context.Background(), db, id, ProductPatch{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProductPatchEmpty(t *testing.T) {
	require.True(t, ProductPatch{}.Empty())
	v := true
	require.False(t, ProductPatch{InStock: &v}.Empty())
}

func TestDeleteProduct(t *testing.T) {
	id := "aaaaaaaaaaaaaaaaaaaaaaaa"

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, id, args[0])
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteProduct(context.Background(), db, id))
	})

	t.Run("missing", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteProduct(context.Background(), db, id), ErrNotFound)
	})
}
