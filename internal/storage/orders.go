package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/arabica/internal/models"
	"github.com/example/arabica/internal/orders"
)

// OrderStore is the GORM-backed implementation of orders.Store.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore constructs OrderStore.
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *OrderStore) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, orders.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) GetOrderForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, orders.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) ListOrdersForUser(ctx context.Context, userID uuid.UUID, filter orders.ListFilter) ([]models.Order, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)
	return s.listOrders(query, filter, false)
}

func (s *OrderStore) ListAllOrders(ctx context.Context, filter orders.ListFilter) ([]models.Order, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{})
	if filter.Search != "" {
		query = query.Where(
			"order_number ILIKE ? OR delivery_address ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%",
		)
	}
	return s.listOrders(query, filter, true)
}

func (s *OrderStore) listOrders(query *gorm.DB, filter orders.ListFilter, withUser bool) ([]models.Order, int64, error) {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Items")
	if withUser {
		query = query.Preload("User")
	}

	var result []models.Order
	if err := query.Order("placed_at desc").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&result).Error; err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

// UpdateOrderStatus writes the new status with a monotonic version bump. A
// non-zero expectedVersion turns the write into a conditional update.
func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status orders.Status, expectedVersion int) (*models.Order, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id)
	if expectedVersion > 0 {
		query = query.Where("version = ?", expectedVersion)
	}

	res := query.Updates(map[string]any{
		"status":  string(status),
		"version": gorm.Expr("version + 1"),
	})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Either the id does not exist or the version check lost a race.
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Order{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, orders.ErrNotFound
		}
		return nil, &orders.ConflictError{OrderID: id, Version: expectedVersion}
	}

	return s.GetOrder(ctx, id)
}

func (s *OrderStore) RecordNotifyResult(ctx context.Context, id uuid.UUID, sentAt time.Time, notifyErr string) error {
	return s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notified_at":  &sentAt,
			"notify_error": notifyErr,
		}).Error
}

func (s *OrderStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *OrderStore) GetMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *OrderStore) GetBranch(ctx context.Context, id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	if err := s.db.WithContext(ctx).First(&branch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}
