package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canozdemir/inventory-backend/internal/models"
	repo "github.com/canozdemir/inventory-backend/internal/repository"
)

const itemColumns = `id, name, description, price, category, rarity, damage, defense, durability, stock, owner_id, created_at`

// rarity sorts by list position, not alphabetically
const rarityOrder = `CASE rarity WHEN 'common' THEN 0 WHEN 'rare' THEN 1 WHEN 'epic' THEN 2 WHEN 'legendary' THEN 3 END`

type itemsRepo struct{ db DB }

func NewItems(db DB) repo.Items {
	return &itemsRepo{db: db}
}

func (r *itemsRepo) Create(ctx context.Context, it models.Item) (models.Item, error) {
	it.ID = uuid.NewString()
	row := r.db.QueryRow(ctx,
		`INSERT INTO items(id, name, description, price, category, rarity, damage, defense, durability, stock, owner_id)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING `+itemColumns,
		it.ID, it.Name, it.Description, it.Price, it.Category, it.Rarity,
		it.Damage, it.Defense, it.Durability, it.Stock, it.OwnerID,
	)
	return scanItem(row)
}

// GetByOwner treats owned-by-someone-else the same as nonexistent.
func (r *itemsRepo) GetByOwner(ctx context.Context, id, ownerID string) (models.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id=$1 AND owner_id=$2`, id, ownerID)
	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Item{}, repo.ErrNotFound
	}
	return it, err
}

func (r *itemsRepo) ListByOwner(ctx context.Context, ownerID string, f repo.ItemFilter) ([]models.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items WHERE owner_id=$1`
	args := []any{ownerID}
	if f.Category != "" {
		args = append(args, f.Category)
		sql += ` AND category=$` + strconv.Itoa(len(args))
	}
	if f.Rarity != "" {
		args = append(args, f.Rarity)
		sql += ` AND rarity=$` + strconv.Itoa(len(args))
	}
	sql += ` ORDER BY ` + rarityOrder + `, created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Update re-checks ownership in the same statement; a racing owner change
// (which no endpoint allows anyway) cannot slip a write through.
func (r *itemsRepo) Update(ctx context.Context, it models.Item) (models.Item, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE items SET name=$3, description=$4, price=$5, category=$6, rarity=$7,
		        damage=$8, defense=$9, durability=$10, stock=$11
		  WHERE id=$1 AND owner_id=$2
		  RETURNING `+itemColumns,
		it.ID, it.OwnerID, it.Name, it.Description, it.Price, it.Category, it.Rarity,
		it.Damage, it.Defense, it.Durability, it.Stock,
	)
	updated, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Item{}, repo.ErrNotFound
	}
	return updated, err
}

func (r *itemsRepo) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanItem(row rowScanner) (models.Item, error) {
	var it models.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Category, &it.Rarity,
		&it.Damage, &it.Defense, &it.Durability, &it.Stock, &it.OwnerID, &it.CreatedAt)
	return it, err
}
