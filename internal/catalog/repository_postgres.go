package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("product not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, category, image, images,
		       stock, is_active, is_leader, created_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, category, image, images,
		       stock, is_active, is_leader, created_at
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	name, desc, images, err := marshalJSONFields(p)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO products
			(id, name, description, price, category, image, images,
			 stock, is_active, is_leader, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		p.ID, name, desc, p.PriceEUR, p.Category, p.Image, images,
		p.Stock, p.IsActive, p.IsLeader, p.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	name, desc, images, err := marshalJSONFields(p)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5,
		    image = $6, images = $7, stock = $8, is_active = $9, is_leader = $10
		WHERE id = $1
	`,
		p.ID, name, desc, p.PriceEUR, p.Category, p.Image, images,
		p.Stock, p.IsActive, p.IsLeader,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Row helpers (name/description/images live in JSONB)
// --------------------------------------------------

func marshalJSONFields(p *Product) ([]byte, []byte, []byte, error) {
	name, err := json.Marshal(p.Name)
	if err != nil {
		return nil, nil, nil, err
	}
	desc, err := json.Marshal(p.Description)
	if err != nil {
		return nil, nil, nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, nil, nil, err
	}
	return name, desc, images, nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p                      Product
		nameRaw, descRaw, imgs []byte
	)

	err := row.Scan(
		&p.ID, &nameRaw, &descRaw, &p.PriceEUR, &p.Category, &p.Image, &imgs,
		&p.Stock, &p.IsActive, &p.IsLeader, &p.CreatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	if err := json.Unmarshal(nameRaw, &p.Name); err != nil {
		return Product{}, err
	}
	if len(descRaw) > 0 {
		if err := json.Unmarshal(descRaw, &p.Description); err != nil {
			return Product{}, err
		}
	}
	if len(imgs) > 0 {
		if err := json.Unmarshal(imgs, &p.Images); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}
