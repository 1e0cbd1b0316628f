package repositoryImp

import (
	"gorm.io/gorm"

	"greenhouse/entities"
	"greenhouse/pkg/shop/repository"
)

type shopRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ShopRepository { return &shopRepo{db} }

func (r *shopRepo) ListProducts(userID *uint) ([]entities.Product, error) {
	var out []entities.Product
	q := r.db
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shopRepo) CreateProduct(p *entities.Product) error { return r.db.Create(p).Error }

func (r *shopRepo) DeleteProduct(id uint) (int64, error) {
	res := r.db.Delete(&entities.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *shopRepo) CreateOrder(order *entities.Order, items []entities.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shopRepo) UserOrderRows(userID uint) ([]repository.OrderRow, error) {
	var out []repository.OrderRow
	err := r.db.Raw(`
		SELECT o.id AS order_id, o.user_id, o.total_amount, o.status, o.created_at,
		       oi.product_id, oi.quantity, oi.price,
		       p.name AS product_name
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC`, userID).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
