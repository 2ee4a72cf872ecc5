package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/middleware"
	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

// -------- Request/Response Structs --------

type CheckoutRequest struct {
	WhatsappNumber  string `json:"whatsapp_number" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	CustomerNotes   string `json:"customer_notes"`
}

type CheckoutResponse struct {
	Message      string       `json:"message"`
	WhatsappLink string       `json:"whatsapp_link"`
	Order        models.Order `json:"order"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errs.InvalidRequest("invalid order status: %s", status)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// -------- Core Logic --------

// Checkout converts the user's cart into a pending order. A single
// transaction snapshots the cart lines into order items, decrements
// stock and clears the cart; any failure rolls everything back.
//
// The stock decrement is a guarded UPDATE (stock_quantity >= quantity),
// so two concurrent checkouts of the same perfume can never drive the
// stock negative.
func Checkout(db *gorm.DB, userID uint, req CheckoutRequest) (*CheckoutResponse, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user not found")
		}
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items.Perfume.Brand").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("cart not found")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errs.InvalidRequest("cart is empty")
	}

	order := models.Order{
		UserID:          userID,
		Status:          models.OrderStatusPending,
		WhatsappNumber:  req.WhatsappNumber,
		DeliveryAddress: req.DeliveryAddress,
		CustomerNotes:   req.CustomerNotes,
		CreatedAt:       time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, item := range cart.Items {
			res := tx.Model(&models.Perfume{}).
				Where("id = ? AND stock_quantity >= ?", item.PerfumeID, item.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errs.InvalidRequest("not enough stock for %s", item.Perfume.Name)
			}

			unitPrice := item.Perfume.DiscountedPrice()
			subtotal := round2(unitPrice * float64(item.Quantity))
			order.Items = append(order.Items, models.OrderItem{
				PerfumeID:   item.PerfumeID,
				ProductName: item.Perfume.Name,
				BrandName:   item.Perfume.Brand.Name,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				Subtotal:    subtotal,
			})
			total = round2(total + subtotal)
		}
		order.TotalAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items in the same transaction
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)

	return &CheckoutResponse{
		Message:      "Order created successfully",
		WhatsappLink: whatsappLink(req.WhatsappNumber, order),
		Order:        order,
	}, nil
}

// GetOrder returns an order after verifying the requesting user owns it.
func GetOrder(db *gorm.DB, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("order not found")
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, errs.Forbidden("order does not belong to user")
	}
	return &order, nil
}

// GetUserOrders returns the user's orders, newest first, paginated.
func GetUserOrders(db *gorm.DB, userID uint, page, size int) (*utils.PageResponse, error) {
	var total int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	resp := utils.NewPageResponse(orders, page, size, total)
	return &resp, nil
}

// CancelOrder cancels a pending order owned by the user and restores
// the stock deducted at checkout, all in one transaction.
func CancelOrder(db *gorm.DB, userID, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("order not found")
			}
			return err
		}
		if order.UserID != userID {
			return errs.Forbidden("order does not belong to user")
		}
		if order.Status != models.OrderStatusPending {
			return errs.InvalidRequest("only pending orders can be cancelled")
		}

		if err := restoreStock(tx, order.Items); err != nil {
			return err
		}

		return tx.Model(&order).Update("status", models.OrderStatusCancelled).Error
	})
}

// restoreStock returns the quantities an order deducted at checkout.
// Callers must guarantee the order is still pending, so the restore
// happens at most once per order.
func restoreStock(tx *gorm.DB, items []models.OrderItem) error {
	for _, item := range items {
		if err := tx.Model(&models.Perfume{}).
			Where("id = ?", item.PerfumeID).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}

// Forward progression of the fulfilment pipeline. Cancellation is
// handled separately: pending orders only, with a stock restore.
var nextStatuses = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusShipped},
	models.OrderStatusConfirmed: {models.OrderStatusShipped},
	models.OrderStatusShipped:   {models.OrderStatusDelivered},
}

func transitionAllowed(from, to models.OrderStatus) bool {
	for _, s := range nextStatuses[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateOrderStatus is the admin-side transition. Orders only move
// forward through the pipeline; cancelled and delivered are terminal.
// Cancelling a pending order restores its stock in the same
// transaction, exactly as the customer-side CancelOrder does.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("order not found")
			}
			return err
		}

		if status == models.OrderStatusCancelled {
			if order.Status != models.OrderStatusPending {
				return errs.InvalidRequest("only pending orders can be cancelled")
			}
			if err := restoreStock(tx, order.Items); err != nil {
				return err
			}
		} else if !transitionAllowed(order.Status, status) {
			return errs.InvalidRequest("cannot change order status from %s to %s", order.Status, status)
		}

		return tx.Model(&order).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type TopCustomer struct {
	UserID     uint   `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	OrderCount int64  `json:"order_count"`
}

// TopCustomers ranks users by number of placed orders.
func TopCustomers(db *gorm.DB, limit int) ([]TopCustomer, error) {
	var rows []TopCustomer
	err := db.Model(&models.Order{}).
		Select("orders.user_id, users.name, users.email, COUNT(orders.id) as order_count").
		Joins("JOIN users ON users.id = orders.user_id").
		Group("orders.user_id, users.name, users.email").
		Order("order_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// -------- Handlers --------

// POST /user/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp, err := Checkout(db, userID, req)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		page, size := utils.PageParams(c)
		resp, err := GetUserOrders(db, userID, page, size)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GET /user/orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		order, err := GetOrder(db, userID, orderID)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /user/orders/:id/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		if err := CancelOrder(db, userID, orderID); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// GET /admin/orders?status=
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(errs.Status(err), gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		order, err := UpdateOrderStatus(db, orderID, status)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders/top-customers
func TopCustomersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := TopCustomers(db, 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
