package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
	"github.com/rookgm/streammart/internal/repository/postgres"
)

const (
	orderColumns = `id, idempotency_key, customer_name, customer_email, customer_contact,
						package_name, package_category, duration_months, amount, currency,
						status, payment_status, payment_provider, payment_ref, payment_meta,
						created_at, updated_at`

	insertOrderQuery = `
						INSERT INTO orders (idempotency_key, customer_name, customer_email, customer_contact,
							package_name, package_category, duration_months, amount, currency, status, payment_status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
						RETURNING ` + orderColumns

	selectOrderByIDQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE id = $1
`
	selectOrderByIdemKeyQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE idempotency_key = $1
`
	selectOrderByPaymentRefQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE payment_ref = $1
`
	selectOrdersQuery = `
						SELECT ` + orderColumns + ` FROM orders
						ORDER BY created_at DESC
`
	selectUnsettledOrdersQuery = `
						SELECT ` + orderColumns + ` FROM orders
						WHERE payment_status = 'processing' AND payment_provider = $1 AND payment_ref <> ''
						ORDER BY created_at
`
	attachPaymentRefQuery = `
						UPDATE orders
						SET payment_provider = $1, payment_ref = $2, payment_status = 'processing', updated_at = now()
						WHERE id = $3 AND payment_status = 'pending'
`
	// conditional write: re-delivering the same outcome is a no-op, and a
	// fulfillment state past processing is never rolled back by a late webhook
	setPaymentOutcomeQuery = `
						UPDATE orders
						SET payment_status = $1,
							status = CASE WHEN status IN ('shipped', 'delivered') THEN status ELSE $2 END,
							updated_at = now()
						WHERE id = $3 AND payment_status <> $1
`
	appendPaymentMetaQuery = `
						UPDATE orders
						SET payment_meta = array_append(payment_meta, $1), updated_at = now()
						WHERE id = $2 AND NOT ($1 = ANY(payment_meta))
`
	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $1, updated_at = now()
						WHERE id = $2
`
)

const pgErrUniqueViolationCode = "23505"

// OrderRepository implements order persistence over postgres
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (or *OrderRepository) scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	order := models.Order{}
	err := row.Scan(&order.ID, &order.IdempotencyKey, &order.CustomerName, &order.CustomerEmail,
		&order.CustomerContact, &order.PackageName, &order.PackageCategory, &order.DurationMonths,
		&order.Amount, &order.Currency, &order.Status, &order.PaymentStatus,
		&order.PaymentProvider, &order.PaymentRef, &order.PaymentMeta,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder inserts new order. A retry carrying the same idempotency key
// returns the previously created order instead of a duplicate.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	row := or.db.QueryRow(ctx, insertOrderQuery, order.IdempotencyKey, order.CustomerName,
		order.CustomerEmail, order.CustomerContact, order.PackageName, order.PackageCategory,
		order.DurationMonths, order.Amount, order.Currency, order.Status, order.PaymentStatus)

	created, err := or.scanOrder(row)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode && order.IdempotencyKey != nil {
			return or.GetOrderByIdempotencyKey(ctx, *order.IdempotencyKey)
		}
		return nil, err
	}

	return created, nil
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := or.scanOrder(or.db.QueryRow(ctx, selectOrderByIDQuery, id))
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetOrderByIdempotencyKey returns order created with the given idempotency key
func (or *OrderRepository) GetOrderByIdempotencyKey(ctx context.Context, key uuid.UUID) (*models.Order, error) {
	order, err := or.scanOrder(or.db.QueryRow(ctx, selectOrderByIdemKeyQuery, key))
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetOrderByPaymentRef returns order by provider tracking id
func (or *OrderRepository) GetOrderByPaymentRef(ctx context.Context, ref string) (*models.Order, error) {
	order, err := or.scanOrder(or.db.QueryRow(ctx, selectOrderByPaymentRefQuery, ref))
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetOrders returns all orders, newest first
func (or *OrderRepository) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order, err := or.scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetUnsettledOrders returns orders awaiting payment confirmation for provider
func (or *OrderRepository) GetUnsettledOrders(ctx context.Context, provider string) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectUnsettledOrdersQuery, provider)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order, err := or.scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// AttachPaymentRef records the provider tracking id on a freshly created order
// and moves payment_status to processing.
func (or *OrderRepository) AttachPaymentRef(ctx context.Context, id uuid.UUID, provider, ref string) error {
	cmd, err := or.db.Exec(ctx, attachPaymentRefQuery, provider, ref, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}

	return nil
}

// SetPaymentOutcome applies a terminal payment outcome with its paired
// fulfillment status. Returns false when the outcome was already applied.
func (or *OrderRepository) SetPaymentOutcome(ctx context.Context, id uuid.UUID, paymentStatus, status string) (bool, error) {
	cmd, err := or.db.Exec(ctx, setPaymentOutcomeQuery, paymentStatus, status, id)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() > 0, nil
}

// AppendPaymentMeta appends an audit token unless it is already recorded.
func (or *OrderRepository) AppendPaymentMeta(ctx context.Context, id uuid.UUID, token string) error {
	_, err := or.db.Exec(ctx, appendPaymentMetaQuery, token, id)
	return err
}

// UpdateOrderStatus sets fulfillment status, used by the admin console only.
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	cmd, err := or.db.Exec(ctx, updateOrderStatusQuery, status, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}

	return nil
}
