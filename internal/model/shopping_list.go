package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Aggregate limits for shopping lists.
const (
	MinListTitleLength    = 3
	MaxListTitleLength    = 100
	MaxListDescriptionLen = 255
	MaxItemsPerList       = 100
	MaxItemNameLength     = 100
	MaxItemUnitLength     = 20
)

var (
	ErrInvalidListTitle       = errors.New("list title must be 3-100 characters")
	ErrInvalidListDescription = errors.New("list description too long")
	ErrInvalidItemName        = errors.New("item name is required")
	ErrInvalidItemUnit        = errors.New("item unit too long")
	ErrInvalidQuantity        = errors.New("quantity must be greater than zero")
	ErrInvalidUnitPrice       = errors.New("unit price must not be negative")
	ErrDuplicateItem          = errors.New("item with this name already exists in the list")
	ErrItemNotFound           = errors.New("item not found in the list")
	ErrListLimitExceeded      = fmt.Errorf("list cannot hold more than %d items", MaxItemsPerList)
)

// ItemStatus marks whether a list item has been bought.
type ItemStatus string

const (
	ItemPending   ItemStatus = "PENDING"
	ItemPurchased ItemStatus = "PURCHASED"
)

// ShoppingListStore persists whole aggregates: Update writes the list row
// and reconciles its items in one transaction.
type ShoppingListStore interface {
	Create(ctx context.Context, list ShoppingList) (ShoppingList, error)
	GetByID(ctx context.Context, id uuid.UUID) (ShoppingList, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]ShoppingList, error)
	Update(ctx context.Context, list ShoppingList) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListItem is an entry inside a shopping list. It is only ever reached
// through its owning aggregate.
type ListItem struct {
	ID        uuid.UUID
	Name      string
	Quantity  float64
	Unit      string
	UnitPrice *float64
	Status    ItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPurchased reports whether the item is marked bought.
func (i ListItem) IsPurchased() bool {
	return i.Status == ItemPurchased
}

func (i ListItem) hasName(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// ShoppingList is the aggregate root for a user's list. All item
// mutations go through it so duplicate names and the item limit hold.
type ShoppingList struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Items       []ListItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewShoppingList validates and builds an empty list.
func NewShoppingList(ownerID uuid.UUID, title, description string) (ShoppingList, error) {
	title, err := validateListTitle(title)
	if err != nil {
		return ShoppingList{}, err
	}
	description, err = validateListDescription(description)
	if err != nil {
		return ShoppingList{}, err
	}

	now := time.Now()
	return ShoppingList{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func validateListTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if len(title) < MinListTitleLength || len(title) > MaxListTitleLength {
		return "", ErrInvalidListTitle
	}
	return title, nil
}

func validateListDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if len(description) > MaxListDescriptionLen {
		return "", ErrInvalidListDescription
	}
	return description, nil
}

func validateItemName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxItemNameLength {
		return "", ErrInvalidItemName
	}
	return name, nil
}

func validateItemUnit(unit string) (string, error) {
	unit = strings.TrimSpace(unit)
	if len(unit) > MaxItemUnitLength {
		return "", ErrInvalidItemUnit
	}
	return unit, nil
}

func validateQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func validateUnitPrice(price *float64) error {
	if price != nil && *price < 0 {
		return ErrInvalidUnitPrice
	}
	return nil
}

// Rename updates the list title.
func (l *ShoppingList) Rename(title string) error {
	title, err := validateListTitle(title)
	if err != nil {
		return err
	}
	l.Title = title
	l.touch()
	return nil
}

// Describe updates the list description.
func (l *ShoppingList) Describe(description string) error {
	description, err := validateListDescription(description)
	if err != nil {
		return err
	}
	l.Description = description
	l.touch()
	return nil
}

// AddItem appends a pending item, rejecting duplicates by
// case-insensitive name and enforcing the aggregate item limit.
func (l *ShoppingList) AddItem(name string, quantity float64, unit string, unitPrice *float64) (ListItem, error) {
	name, err := validateItemName(name)
	if err != nil {
		return ListItem{}, err
	}
	if err := validateQuantity(quantity); err != nil {
		return ListItem{}, err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return ListItem{}, err
	}
	unit, err = validateItemUnit(unit)
	if err != nil {
		return ListItem{}, err
	}
	if len(l.Items) >= MaxItemsPerList {
		return ListItem{}, ErrListLimitExceeded
	}
	for _, item := range l.Items {
		if item.hasName(name) {
			return ListItem{}, ErrDuplicateItem
		}
	}

	now := time.Now()
	item := ListItem{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		UnitPrice: unitPrice,
		Status:    ItemPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.Items = append(l.Items, item)
	l.touch()
	return item, nil
}

// RemoveItem deletes the item from the aggregate.
func (l *ShoppingList) RemoveItem(itemID uuid.UUID) error {
	for i, item := range l.Items {
		if item.ID == itemID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			l.touch()
			return nil
		}
	}
	return ErrItemNotFound
}

// RenameItem changes an item name, rejecting collisions with the other
// items in the list.
func (l *ShoppingList) RenameItem(itemID uuid.UUID, name string) error {
	name, err := validateItemName(name)
	if err != nil {
		return err
	}
	idx, err := l.indexOf(itemID)
	if err != nil {
		return err
	}
	for i, item := range l.Items {
		if i != idx && item.hasName(name) {
			return ErrDuplicateItem
		}
	}
	l.Items[idx].Name = name
	l.Items[idx].UpdatedAt = time.Now()
	l.touch()
	return nil
}

// UpdateItemQuantity changes an item quantity.
func (l *ShoppingList) UpdateItemQuantity(itemID uuid.UUID, quantity float64) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	idx, err := l.indexOf(itemID)
	if err != nil {
		return err
	}
	l.Items[idx].Quantity = quantity
	l.Items[idx].UpdatedAt = time.Now()
	l.touch()
	return nil
}

// UpdateItemUnit changes an item measurement unit.
func (l *ShoppingList) UpdateItemUnit(itemID uuid.UUID, unit string) error {
	unit, err := validateItemUnit(unit)
	if err != nil {
		return err
	}
	idx, err := l.indexOf(itemID)
	if err != nil {
		return err
	}
	l.Items[idx].Unit = unit
	l.Items[idx].UpdatedAt = time.Now()
	l.touch()
	return nil
}

// UpdateItemUnitPrice changes an item price, nil clears it.
func (l *ShoppingList) UpdateItemUnitPrice(itemID uuid.UUID, price *float64) error {
	if err := validateUnitPrice(price); err != nil {
		return err
	}
	idx, err := l.indexOf(itemID)
	if err != nil {
		return err
	}
	l.Items[idx].UnitPrice = price
	l.Items[idx].UpdatedAt = time.Now()
	l.touch()
	return nil
}

// MarkItemPurchased flips the item to purchased.
func (l *ShoppingList) MarkItemPurchased(itemID uuid.UUID) error {
	return l.setItemStatus(itemID, ItemPurchased)
}

// MarkItemPending flips the item back to pending.
func (l *ShoppingList) MarkItemPending(itemID uuid.UUID) error {
	return l.setItemStatus(itemID, ItemPending)
}

func (l *ShoppingList) setItemStatus(itemID uuid.UUID, status ItemStatus) error {
	idx, err := l.indexOf(itemID)
	if err != nil {
		return err
	}
	l.Items[idx].Status = status
	l.Items[idx].UpdatedAt = time.Now()
	l.touch()
	return nil
}

// ClearPurchased removes purchased items and reports how many went.
func (l *ShoppingList) ClearPurchased() int {
	kept := l.Items[:0]
	removed := 0
	for _, item := range l.Items {
		if item.IsPurchased() {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.Items = kept
	if removed > 0 {
		l.touch()
	}
	return removed
}

// Item returns the item with the given ID.
func (l *ShoppingList) Item(itemID uuid.UUID) (ListItem, error) {
	idx, err := l.indexOf(itemID)
	if err != nil {
		return ListItem{}, err
	}
	return l.Items[idx], nil
}

// PendingCount reports how many items still need buying.
func (l *ShoppingList) PendingCount() int {
	n := 0
	for _, item := range l.Items {
		if !item.IsPurchased() {
			n++
		}
	}
	return n
}

func (l *ShoppingList) indexOf(itemID uuid.UUID) (int, error) {
	for i, item := range l.Items {
		if item.ID == itemID {
			return i, nil
		}
	}
	return 0, ErrItemNotFound
}

func (l *ShoppingList) touch() {
	l.UpdatedAt = time.Now()
}
