package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/clothes-service/internal/domain"
)

// ClothesRepository manages catalog persistence.
type ClothesRepository interface {
	Create(ctx context.Context, item *domain.Clothes) error
	Update(ctx context.Context, item *domain.Clothes) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Clothes, error)
	List(ctx context.Context) ([]domain.Clothes, error)
}

type clothesRepository struct {
	pool *pgxpool.Pool
}

// NewClothesRepository builds the repository.
func NewClothesRepository(pool *pgxpool.Pool) ClothesRepository {
	return &clothesRepository{pool: pool}
}

func (r *clothesRepository) Create(ctx context.Context, item *domain.Clothes) error {
	const query = `
        INSERT INTO clothes (name, color, size, photo_url)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, last_modified_at`
	err := r.pool.QueryRow(ctx, query,
		item.Name,
		item.Color,
		item.Size,
		item.PhotoURL,
	).Scan(&item.ID, &item.CreatedAt, &item.LastModifiedAt)
	return mapPgError(err)
}

func (r *clothesRepository) Update(ctx context.Context, item *domain.Clothes) error {
	const query = `
        UPDATE clothes SET name=$1, color=$2, size=$3, photo_url=$4, last_modified_at=NOW()
        WHERE id=$5
        RETURNING created_at, last_modified_at`
	err := r.pool.QueryRow(ctx, query,
		item.Name,
		item.Color,
		item.Size,
		item.PhotoURL,
		item.ID,
	).Scan(&item.CreatedAt, &item.LastModifiedAt)
	return mapPgError(err)
}

func (r *clothesRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clothes WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clothesRepository) GetByID(ctx context.Context, id int64) (*domain.Clothes, error) {
	const query = `
        SELECT id, name, color, size, photo_url, created_at, last_modified_at
        FROM clothes WHERE id=$1`
	var item domain.Clothes
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Color,
		&item.Size,
		&item.PhotoURL,
		&item.CreatedAt,
		&item.LastModifiedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &item, nil
}

func (r *clothesRepository) List(ctx context.Context) ([]domain.Clothes, error) {
	const query = `
        SELECT id, name, color, size, photo_url, created_at, last_modified_at
        FROM clothes ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Clothes, 0)
	for rows.Next() {
		var item domain.Clothes
		if err := rows.Scan(&item.ID, &item.Name, &item.Color, &item.Size, &item.PhotoURL, &item.CreatedAt, &item.LastModifiedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
