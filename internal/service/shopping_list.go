package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/model"
)

// ShoppingList exposes list CRUD on top of the aggregate. Every
// operation checks that the caller owns the list before touching it.
type ShoppingList struct {
	store  model.ShoppingListStore
	logger *logger.Logger
}

// NewShoppingList creates the shopping-list service.
func NewShoppingList(store model.ShoppingListStore, logger *logger.Logger) *ShoppingList {
	return &ShoppingList{
		store:  store,
		logger: logger,
	}
}

// ItemUpdate carries the optional fields of an item patch. Nil fields
// are left untouched.
type ItemUpdate struct {
	Name       *string
	Quantity   *float64
	Unit       *string
	UnitPrice  *float64
	ClearPrice bool
}

// CreateList validates and persists a new list for the owner.
func (s *ShoppingList) CreateList(ctx context.Context, ownerID uuid.UUID, title, description string) (model.ShoppingList, error) {
	list, err := model.NewShoppingList(ownerID, title, description)
	if err != nil {
		return model.ShoppingList{}, err
	}

	created, err := s.store.Create(ctx, list)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("create list: %w", err)
	}

	s.logger.Info("list created", "list_id", created.ID, "owner_id", ownerID)
	return created, nil
}

// GetList returns a single list owned by the caller.
func (s *ShoppingList) GetList(ctx context.Context, ownerID, listID uuid.UUID) (model.ShoppingList, error) {
	return s.owned(ctx, ownerID, listID)
}

// ListsForOwner returns every list the caller owns.
func (s *ShoppingList) ListsForOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShoppingList, error) {
	lists, err := s.store.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	return lists, nil
}

// UpdateList renames and/or re-describes a list. Nil fields are left
// untouched.
func (s *ShoppingList) UpdateList(ctx context.Context, ownerID, listID uuid.UUID, title, description *string) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		if title != nil {
			if err := list.Rename(*title); err != nil {
				return err
			}
		}
		if description != nil {
			if err := list.Describe(*description); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteList removes a list the caller owns.
func (s *ShoppingList) DeleteList(ctx context.Context, ownerID, listID uuid.UUID) error {
	if _, err := s.owned(ctx, ownerID, listID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, listID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	s.logger.Info("list deleted", "list_id", listID, "owner_id", ownerID)
	return nil
}

// AddItem appends a new item to the list.
func (s *ShoppingList) AddItem(ctx context.Context, ownerID, listID uuid.UUID, name string, quantity float64, unit string, unitPrice *float64) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		_, err := list.AddItem(name, quantity, unit, unitPrice)
		return err
	})
}

// UpdateItem applies a partial item patch.
func (s *ShoppingList) UpdateItem(ctx context.Context, ownerID, listID, itemID uuid.UUID, patch ItemUpdate) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		if patch.Name != nil {
			if err := list.RenameItem(itemID, *patch.Name); err != nil {
				return err
			}
		}
		if patch.Quantity != nil {
			if err := list.UpdateItemQuantity(itemID, *patch.Quantity); err != nil {
				return err
			}
		}
		if patch.Unit != nil {
			if err := list.UpdateItemUnit(itemID, *patch.Unit); err != nil {
				return err
			}
		}
		if patch.UnitPrice != nil || patch.ClearPrice {
			if err := list.UpdateItemUnitPrice(itemID, patch.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveItem deletes an item from the list.
func (s *ShoppingList) RemoveItem(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		return list.RemoveItem(itemID)
	})
}

// MarkItemPurchased flips an item to PURCHASED.
func (s *ShoppingList) MarkItemPurchased(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		return list.MarkItemPurchased(itemID)
	})
}

// MarkItemPending flips an item back to PENDING.
func (s *ShoppingList) MarkItemPending(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		return list.MarkItemPending(itemID)
	})
}

// ClearPurchased drops every purchased item from the list.
func (s *ShoppingList) ClearPurchased(ctx context.Context, ownerID, listID uuid.UUID) (model.ShoppingList, error) {
	return s.mutate(ctx, ownerID, listID, func(list *model.ShoppingList) error {
		removed := list.ClearPurchased()
		s.logger.Debug("purchased items cleared", "list_id", listID, "removed", removed)
		return nil
	})
}

func (s *ShoppingList) owned(ctx context.Context, ownerID, listID uuid.UUID) (model.ShoppingList, error) {
	list, err := s.store.GetByID(ctx, listID)
	if err != nil {
		return model.ShoppingList{}, err
	}
	if list.OwnerID != ownerID {
		s.logger.Info("list access denied", "list_id", listID, "owner_id", list.OwnerID, "caller_id", ownerID)
		return model.ShoppingList{}, model.ErrUnauthorized
	}
	return list, nil
}

func (s *ShoppingList) mutate(ctx context.Context, ownerID, listID uuid.UUID, fn func(list *model.ShoppingList) error) (model.ShoppingList, error) {
	list, err := s.owned(ctx, ownerID, listID)
	if err != nil {
		return model.ShoppingList{}, err
	}
	if err := fn(&list); err != nil {
		return model.ShoppingList{}, err
	}
	if err := s.store.Update(ctx, list); err != nil {
		return model.ShoppingList{}, fmt.Errorf("update list: %w", err)
	}
	return list, nil
}
