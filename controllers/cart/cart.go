package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/middleware"
	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

type CartItemInput struct {
	PerfumeID uint `json:"perfume_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetOrCreateCart returns the user's cart with items preloaded,
// creating an empty one on first access. The unique index on user_id
// guarantees at most one cart per user.
func GetOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Perfume.Brand").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds a perfume to the user's cart. An existing line for the
// same perfume is merged; the combined quantity is re-checked against
// stock. The read-merge-write runs in one transaction.
func AddToCart(db *gorm.DB, userID, perfumeID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, errs.InvalidRequest("quantity must be positive")
	}

	var item models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		var perfume models.Perfume
		if err := tx.First(&perfume, "id = ?", perfumeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("perfume %d not found", perfumeID)
			}
			return err
		}

		cart, err := GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		err = tx.Where("cart_id = ? AND perfume_id = ?", cart.ID, perfumeID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if perfume.StockQuantity < quantity {
				return errs.InvalidRequest("not enough stock for %s", perfume.Name)
			}
			item = models.CartItem{
				CartID:    cart.ID,
				PerfumeID: perfumeID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		combined := item.Quantity + quantity
		if perfume.StockQuantity < combined {
			return errs.InvalidRequest("not enough stock for %s", perfume.Name)
		}
		item.Quantity = combined
		item.AddedAt = time.Now()
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem sets the quantity of an existing line.
func UpdateCartItem(db *gorm.DB, userID, perfumeID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, errs.InvalidRequest("quantity must be positive")
	}

	var item models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		err = tx.Preload("Perfume").Where("cart_id = ? AND perfume_id = ?", cart.ID, perfumeID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("cart item not found")
		}
		if err != nil {
			return err
		}

		if item.Perfume.StockQuantity < quantity {
			return errs.InvalidRequest("not enough stock for %s", item.Perfume.Name)
		}
		item.Quantity = quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart deletes a line if present. Removing an absent line is
// a no-op.
func RemoveFromCart(db *gorm.DB, userID, perfumeID uint) error {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_id = ? AND perfume_id = ?", cart.ID, perfumeID).
		Delete(&models.CartItem{}).Error
}

// ClearCart removes every line from the user's cart.
func ClearCart(db *gorm.DB, userID uint) error {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

// -------- Handlers --------

// GET /user/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cart, err := GetOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /user/cart
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := AddToCart(db, userID, input.PerfumeID, input.Quantity)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:perfume_id
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		perfumeID, err := utils.ParseUintParam(c, "perfume_id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume_id"})
			return
		}
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := UpdateCartItem(db, userID, perfumeID, input.Quantity)
		if err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:perfume_id
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		perfumeID, err := utils.ParseUintParam(c, "perfume_id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume_id"})
			return
		}
		if err := RemoveFromCart(db, userID, perfumeID); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := ClearCart(db, userID); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
