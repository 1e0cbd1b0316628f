package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"greenhouse/database"
	"greenhouse/entities"
	"greenhouse/pkg/shop/repositoryImp"
)

func newTestEcho(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	h := New(repositoryImp.New(db))
	e := echo.New()
	e.GET("/products", h.ListProducts)
	e.POST("/products", h.CreateProduct)
	e.DELETE("/products/:id", h.DeleteProduct)
	e.POST("/orders", h.CreateOrder)
	e.GET("/orders/user/:user_id", h.GetUserOrders)
	return e, db
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductValidation(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodPost, "/products", `{"price":9.5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Name and price are required")

	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Basil seeds"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Basil seeds","price":9.5,"stock":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestListProductsFilterByUser(t *testing.T) {
	e, _ := newTestEcho(t)

	doJSON(e, http.MethodPost, "/products", `{"name":"Basil seeds","price":9.5,"user_id":1}`)
	doJSON(e, http.MethodPost, "/products", `{"name":"Mint seeds","price":4,"user_id":2}`)

	rec := doJSON(e, http.MethodGet, "/products", "")
	var all []entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 2)

	rec = doJSON(e, http.MethodGet, "/products?user_id=2", "")
	var mine []entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	require.Equal(t, "Mint seeds", mine[0].Name)
}

func TestDeleteProduct(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodDelete, "/products/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Product not found")

	rec = doJSON(e, http.MethodPost, "/products", `{"name":"Basil seeds","price":9.5}`)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := int(created["id"].(float64))

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/products/%d", id), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/products/%d", id), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodPost, "/orders", `{"user_id":1,"items":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User ID and items are required")

	rec = doJSON(e, http.MethodPost, "/orders",
		`{"total_amount":14,"items":[{"product_id":1,"quantity":1,"price":14}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrdersGroupedPerOrder(t *testing.T) {
	e, db := newTestEcho(t)

	p1 := entities.Product{Name: "Basil seeds", Price: 9.5}
	p2 := entities.Product{Name: "Mint seeds", Price: 4}
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)

	rec := doJSON(e, http.MethodPost, "/orders", fmt.Sprintf(
		`{"user_id":7,"total_amount":13.5,"items":[{"product_id":%d,"quantity":1,"price":9.5},{"product_id":%d,"quantity":1,"price":4}]}`,
		p1.ID, p2.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/orders", fmt.Sprintf(
		`{"user_id":7,"total_amount":8,"items":[{"product_id":%d,"quantity":2,"price":4}]}`, p2.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/orders/user/7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []struct {
		ID    uint `json:"id"`
		Items []struct {
			ProductID   uint   `json:"product_id"`
			ProductName string `json:"product_name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)

	total := 0
	for _, o := range orders {
		total += len(o.Items)
		for _, it := range o.Items {
			require.NotEmpty(t, it.ProductName)
		}
	}
	require.Equal(t, 3, total)

	rec = doJSON(e, http.MethodGet, "/orders/user/999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	e, db := newTestEcho(t)

	// With the item table gone the second insert of the transaction fails;
	// the already-written order row must not survive.
	require.NoError(t, db.Migrator().DropTable(&entities.OrderItem{}))

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"user_id":5,"total_amount":9.5,"items":[{"product_id":1,"quantity":1,"price":9.5}]}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to create order")

	var orderCount int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&orderCount).Error)
	require.Equal(t, int64(0), orderCount)
}

func TestOrderAndItemsPersistTogether(t *testing.T) {
	e, db := newTestEcho(t)

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"user_id":3,"total_amount":5,"items":[{"product_id":1,"quantity":1,"price":5}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&entities.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&entities.OrderItem{}).Count(&itemCount).Error)
	require.Equal(t, int64(1), orderCount)
	require.Equal(t, int64(1), itemCount)
}
