package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"greenhouse/entities"
	"greenhouse/pkg/shop/repository"
)

type ShopCtrl struct{ repo repository.ShopRepository }

func New(repo repository.ShopRepository) *ShopCtrl { return &ShopCtrl{repo} }

func (h *ShopCtrl) ListProducts(c echo.Context) error {
	var userID *uint
	if v := c.QueryParam("user_id"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			userID = &id
		}
	}
	products, err := h.repo.ListProducts(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if products == nil {
		products = []entities.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ShopCtrl) CreateProduct(c echo.Context) error {
	var body struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ImageURL    string  `json:"image_url"`
		Stock       int     `json:"stock"`
		UserID      *uint   `json:"user_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Name == "" || body.Price == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and price are required"})
	}
	p := entities.Product{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		ImageURL:    body.ImageURL,
		Stock:       body.Stock,
		UserID:      body.UserID,
	}
	if err := h.repo.CreateProduct(&p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Product created successfully", "id": p.ID})
}

func (h *ShopCtrl) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	n, err := h.repo.DeleteProduct(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if n == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

func (h *ShopCtrl) CreateOrder(c echo.Context) error {
	var body struct {
		UserID      uint                 `json:"user_id"`
		TotalAmount float64              `json:"total_amount"`
		Items       []entities.OrderItem `json:"items"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.UserID == 0 || len(body.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID and items are required"})
	}

	order := entities.Order{UserID: body.UserID, TotalAmount: body.TotalAmount, Status: "pending"}
	if err := h.repo.CreateOrder(&order, body.Items); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create order: " + err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Order created successfully", "order_id": order.ID})
}

func (h *ShopCtrl) GetUserOrders(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID is required"})
	}

	rows, err := h.repo.UserOrderRows(uint(userID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch orders: " + err.Error()})
	}

	// Group the flat join rows into nested orders, keeping first-seen order.
	type item struct {
		ProductID   uint    `json:"product_id"`
		ProductName string  `json:"product_name"`
		Quantity    int     `json:"quantity"`
		Price       float64 `json:"price"`
	}
	type order struct {
		ID          uint    `json:"id"`
		UserID      uint    `json:"user_id"`
		TotalAmount float64 `json:"total_amount"`
		Status      string  `json:"status"`
		CreatedAt   any     `json:"created_at"`
		Items       []item  `json:"items"`
	}

	byID := make(map[uint]*order)
	out := make([]*order, 0)
	for _, row := range rows {
		o, ok := byID[row.OrderID]
		if !ok {
			o = &order{
				ID:          row.OrderID,
				UserID:      row.UserID,
				TotalAmount: row.TotalAmount,
				Status:      row.Status,
				CreatedAt:   row.CreatedAt,
				Items:       []item{},
			}
			byID[row.OrderID] = o
			out = append(out, o)
		}
		if row.ProductID != nil {
			it := item{ProductID: *row.ProductID}
			if row.ProductName != nil {
				it.ProductName = *row.ProductName
			}
			if row.Quantity != nil {
				it.Quantity = *row.Quantity
			}
			if row.Price != nil {
				it.Price = *row.Price
			}
			o.Items = append(o.Items, it)
		}
	}
	return c.JSON(http.StatusOK, out)
}
