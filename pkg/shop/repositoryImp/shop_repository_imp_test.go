package repositoryImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"greenhouse/database"
	"greenhouse/entities"
)

func TestCreateOrderMidBatchFailureLeavesNoRows(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := New(db)

	// Preset ids so the second item insert hits a primary key conflict after
	// the order and the first item have already been written.
	order := entities.Order{UserID: 7, TotalAmount: 13.5, Status: "pending"}
	items := []entities.OrderItem{
		{ID: 1, ProductID: 1, Quantity: 1, Price: 9.5},
		{ID: 1, ProductID: 2, Quantity: 1, Price: 4},
	}
	require.Error(t, repo.CreateOrder(&order, items))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&itemCount).Error)
	require.Equal(t, int64(0), orderCount)
	require.Equal(t, int64(0), itemCount)
}

func TestCreateOrderTwoItems(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := New(db)

	order := entities.Order{UserID: 7, TotalAmount: 13.5, Status: "pending"}
	items := []entities.OrderItem{
		{ProductID: 1, Quantity: 1, Price: 9.5},
		{ProductID: 2, Quantity: 1, Price: 4},
	}
	require.NoError(t, repo.CreateOrder(&order, items))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&itemCount).Error)
	require.Equal(t, int64(1), orderCount)
	require.Equal(t, int64(2), itemCount)

	// Items point at the order that was created with them.
	var stored []entities.OrderItem
	require.NoError(t, db.Find(&stored).Error)
	for _, it := range stored {
		require.Equal(t, order.ID, it.OrderID)
	}
}
