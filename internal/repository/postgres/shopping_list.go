package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shooping/list-server/internal/model"
)

var _ model.ShoppingListStore = (*ShoppingListRepository)(nil)

type ShoppingListRepository struct {
	db *Connection
}

func NewShoppingListRepository(db *Connection) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

func (r *ShoppingListRepository) Create(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const insertList = `
        INSERT INTO shopping_lists (id, owner_id, title, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err = tx.Exec(ctx, insertList,
		list.ID, list.OwnerID, list.Title, list.Description, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("failed to create list: %w", err)
	}

	if err := insertItems(ctx, tx, list.ID, list.Items); err != nil {
		return model.ShoppingList{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.ShoppingList{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return list, nil
}

func (r *ShoppingListRepository) GetByID(ctx context.Context, id uuid.UUID) (model.ShoppingList, error) {
	const query = `
        SELECT id, owner_id, title, description, created_at, updated_at
        FROM shopping_lists WHERE id = $1
    `

	var list model.ShoppingList
	err := r.db.QueryRow(ctx, query, id).Scan(
		&list.ID, &list.OwnerID, &list.Title, &list.Description, &list.CreatedAt, &list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShoppingList{}, model.ErrNotFound
		}
		return model.ShoppingList{}, fmt.Errorf("failed to get list: %w", err)
	}

	items, err := r.itemsOf(ctx, list.ID)
	if err != nil {
		return model.ShoppingList{}, err
	}
	list.Items = items

	return list, nil
}

func (r *ShoppingListRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShoppingList, error) {
	const query = `
        SELECT id, owner_id, title, description, created_at, updated_at
        FROM shopping_lists WHERE owner_id = $1
        ORDER BY created_at
    `

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var lists []model.ShoppingList
	for rows.Next() {
		var list model.ShoppingList
		err := rows.Scan(&list.ID, &list.OwnerID, &list.Title, &list.Description, &list.CreatedAt, &list.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lists: %w", err)
	}

	for i := range lists {
		items, err := r.itemsOf(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}

	return lists, nil
}

// Update writes the whole aggregate back: the list row is updated and
// the items are replaced with the in-memory set in one transaction.
func (r *ShoppingListRepository) Update(ctx context.Context, list model.ShoppingList) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const updateList = `
        UPDATE shopping_lists
        SET title = $2, description = $3, updated_at = $4
        WHERE id = $1
    `
	tag, err := tx.Exec(ctx, updateList, list.ID, list.Title, list.Description, list.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM list_items WHERE list_id = $1`, list.ID); err != nil {
		return fmt.Errorf("failed to clear list items: %w", err)
	}
	if err := insertItems(ctx, tx, list.ID, list.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ShoppingListRepository) itemsOf(ctx context.Context, listID uuid.UUID) ([]model.ListItem, error) {
	const query = `
        SELECT id, name, quantity, unit, unit_price, status, created_at, updated_at
        FROM list_items WHERE list_id = $1
        ORDER BY created_at
    `

	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}
	defer rows.Close()

	var items []model.ListItem
	for rows.Next() {
		var item model.ListItem
		err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.UnitPrice, &item.Status, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list items: %w", err)
	}

	return items, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, listID uuid.UUID, items []model.ListItem) error {
	const query = `
        INSERT INTO list_items (id, list_id, name, quantity, unit, unit_price, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.ID, listID, item.Name, item.Quantity, item.Unit, item.UnitPrice, item.Status,
			item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert list item: %w", err)
		}
	}
	return nil
}
