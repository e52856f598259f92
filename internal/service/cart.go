package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository"
)

var (
	ErrProductNotFound    = repository.ErrProductNotFound
	ErrInsufficientStock  = repository.ErrInsufficientStock
	ErrCartItemNotFound   = repository.ErrCartItemNotFound
	ErrEmptyCart          = repository.ErrEmptyCart
	ErrActiveCartConflict = repository.ErrActiveCartConflict
	ErrHoldGroupNotFound  = repository.ErrHoldGroupNotFound
)

type CartRepository interface {
	Create(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	Update(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	FindByID(ctx context.Context, cashierID, itemID uint) (domain.CartItem, error)
	FindByCashierAndProduct(ctx context.Context, cashierID, productID uint) (domain.CartItem, error)
	FindActive(ctx context.Context, cashierID uint) ([]domain.CartItem, error)
	FindHeld(ctx context.Context, cashierID uint) ([]domain.CartItem, error)
	Delete(ctx context.Context, itemID uint) error
	HoldActive(ctx context.Context, cashierID uint, groupID, label string, heldAt time.Time) error
	ResumeGroup(ctx context.Context, cashierID uint, groupID string) error
	ClearGroup(ctx context.Context, cashierID uint, groupID string) error
}

type CartProductRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
}

type CartService struct {
	repo        CartRepository
	productRepo CartProductRepository

	now        func() time.Time
	newGroupID func() string
}

func NewCartService(repo CartRepository, productRepo CartProductRepository) *CartService {
	return &CartService{
		repo:        repo,
		productRepo: productRepo,
		now:         time.Now,
		newGroupID:  uuid.NewString,
	}
}

// AddItem puts quantity of a product on the cashier's cart. An existing line
// for the same product is merged into instead, regardless of hold status,
// and its price is recomputed from the product's current sell price.
func (s *CartService) AddItem(ctx context.Context, cashierID, productID uint, quantity int) (domain.CartItem, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
	}

	if quantity > product.Stock {
		return domain.CartItem{}, ErrInsufficientStock
	}

	existing, err := s.repo.FindByCashierAndProduct(ctx, cashierID, productID)
	if err == nil {
		existing.Quantity += quantity
		existing.Price = product.SellPrice * float64(existing.Quantity)

		updated, err := s.repo.Update(ctx, existing)
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("s.repo.Update -> %w", err)
		}
		updated.Product = product

		return updated, nil
	}
	if !errors.Is(err, ErrCartItemNotFound) {
		return domain.CartItem{}, fmt.Errorf("s.repo.FindByCashierAndProduct -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.CartItem{
		CashierID: cashierID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     product.SellPrice * float64(quantity),
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	created.Product = product

	return created, nil
}

// UpdateQuantity overwrites a line's quantity and recomputes its price.
func (s *CartService) UpdateQuantity(ctx context.Context, cashierID, itemID uint, quantity int) (domain.CartItem, error) {
	item, err := s.repo.FindByID(ctx, cashierID, itemID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
	}

	if quantity > product.Stock {
		return domain.CartItem{}, ErrInsufficientStock
	}

	item.Quantity = quantity
	item.Price = product.SellPrice * float64(quantity)

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	updated.Product = product

	return updated, nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID uint) error {
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *CartService) ActiveCart(ctx context.Context, cashierID uint) ([]domain.CartItem, error) {
	items, err := s.repo.FindActive(ctx, cashierID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return items, nil
}

// Hold parks the cashier's whole active cart under a fresh group id and
// returns that id. The cashier is then free to start a new sale.
func (s *CartService) Hold(ctx context.Context, cashierID uint, label string) (string, error) {
	groupID := s.newGroupID()
	heldAt := s.now()

	if label == "" {
		label = "Held " + heldAt.Format("Jan 2 15:04")
	}

	if err := s.repo.HoldActive(ctx, cashierID, groupID, label, heldAt); err != nil {
		return "", fmt.Errorf("s.repo.HoldActive -> %w", err)
	}

	return groupID, nil
}

// Resume reactivates a parked sale. It fails with ErrActiveCartConflict if
// the cashier has any active line, so two sales are never silently merged.
func (s *CartService) Resume(ctx context.Context, cashierID uint, groupID string) error {
	if err := s.repo.ResumeGroup(ctx, cashierID, groupID); err != nil {
		return fmt.Errorf("s.repo.ResumeGroup -> %w", err)
	}

	return nil
}

// ClearHold discards a parked sale, deleting every line in the group.
func (s *CartService) ClearHold(ctx context.Context, cashierID uint, groupID string) error {
	if err := s.repo.ClearGroup(ctx, cashierID, groupID); err != nil {
		return fmt.Errorf("s.repo.ClearGroup -> %w", err)
	}

	return nil
}

// HeldGroups returns a restartable sequence over the cashier's parked
// sales. Every range re-reads the repository, so a caller can iterate the
// same sequence again after holds change.
func (s *CartService) HeldGroups(ctx context.Context, cashierID uint) iter.Seq2[domain.HeldGroup, error] {
	return func(yield func(domain.HeldGroup, error) bool) {
		items, err := s.repo.FindHeld(ctx, cashierID)
		if err != nil {
			yield(domain.HeldGroup{}, fmt.Errorf("s.repo.FindHeld -> %w", err))
			return
		}

		for _, group := range groupHeldItems(items) {
			if !yield(group, nil) {
				return
			}
		}
	}
}

// ListHeldGroups collects the sequence into a slice for callers that want
// the whole snapshot at once.
func (s *CartService) ListHeldGroups(ctx context.Context, cashierID uint) ([]domain.HeldGroup, error) {
	groups := make([]domain.HeldGroup, 0)
	for group, err := range s.HeldGroups(ctx, cashierID) {
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// groupHeldItems folds held lines into one summary per hold group,
// preserving the held-at order of the input.
func groupHeldItems(items []domain.CartItem) []domain.HeldGroup {
	var groups []domain.HeldGroup
	index := make(map[string]int)

	for _, item := range items {
		if item.HoldGroupID == nil {
			continue
		}

		i, ok := index[*item.HoldGroupID]
		if !ok {
			group := domain.HeldGroup{
				GroupID: *item.HoldGroupID,
			}
			if item.HoldLabel != nil {
				group.Label = *item.HoldLabel
			}
			if item.HeldAt != nil {
				group.HeldAt = *item.HeldAt
			}

			groups = append(groups, group)
			i = len(groups) - 1
			index[*item.HoldGroupID] = i
		}

		groups[i].ItemCount += item.Quantity
		groups[i].Total += item.Price
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
