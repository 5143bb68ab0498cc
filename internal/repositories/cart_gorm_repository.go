package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"samurai-nutrition/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetCart retrieves a user's cart with its items.
func (r *GORMCartRepository) GetCart(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// GetOrCreateCart retrieves the user's cart, creating an empty one if
// none exists yet.
func (r *GORMCartRepository) GetOrCreateCart(userID string) (*models.Cart, error) {
	cart, err := r.GetCart(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	cart = &models.Cart{ID: uuid.New().String(), UserID: userID}
	if err := r.db.Create(cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
	}
	return cart, nil
}

// AddCartItem inserts a new cart line.
func (r *GORMCartRepository) AddCartItem(cartID, productID string, quantity int) (*models.CartItem, error) {
	item := models.CartItem{
		ID:        uuid.New().String(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return &item, nil
}

// GetCartItem finds a cart line by product.
func (r *GORMCartRepository) GetCartItem(cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s not in cart: %w", productID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return &item, nil
}

// SetCartItemQuantity overwrites the quantity of an existing line.
func (r *GORMCartRepository) SetCartItemQuantity(cartID, productID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not in cart: %w", productID, models.ErrNotFound)
	}
	return nil
}

// RemoveCartItem deletes a cart line.
func (r *GORMCartRepository) RemoveCartItem(cartID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "cart_id = ? AND product_id = ?", cartID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not in cart: %w", productID, models.ErrNotFound)
	}
	return nil
}

// EmptyCart deletes every line of a cart.
func (r *GORMCartRepository) EmptyCart(cartID string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to empty cart: %w", err)
	}
	return nil
}

// GetWishlist retrieves a user's wishlist with its items.
func (r *GORMCartRepository) GetWishlist(userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.Preload("Items").First(&wishlist, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return &wishlist, nil
}

// GetOrCreateWishlist retrieves the user's wishlist, creating an empty
// one if none exists yet.
func (r *GORMCartRepository) GetOrCreateWishlist(userID string) (*models.Wishlist, error) {
	wishlist, err := r.GetWishlist(userID)
	if err == nil {
		return wishlist, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	wishlist = &models.Wishlist{ID: uuid.New().String(), UserID: userID}
	if err := r.db.Create(wishlist).Error; err != nil {
		return nil, fmt.Errorf("failed to create wishlist for user %s: %w", userID, err)
	}
	return wishlist, nil
}

// AddWishlistItem inserts a wishlist entry; duplicate adds return
// models.ErrDuplicate so the handler can answer 409.
func (r *GORMCartRepository) AddWishlistItem(wishlistID, productID string) (*models.WishlistItem, error) {
	var existing models.WishlistItem
	err := r.db.First(&existing, "wishlist_id = ? AND product_id = ?", wishlistID, productID).Error
	if err == nil {
		return nil, fmt.Errorf("product %s already in wishlist: %w", productID, models.ErrDuplicate)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check wishlist item: %w", err)
	}

	item := models.WishlistItem{
		ID:         uuid.New().String(),
		WishlistID: wishlistID,
		ProductID:  productID,
		AddedAt:    time.Now(),
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return &item, nil
}

// RemoveWishlistItem deletes a wishlist entry.
func (r *GORMCartRepository) RemoveWishlistItem(wishlistID, productID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "wishlist_id = ? AND product_id = ?", wishlistID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not in wishlist: %w", productID, models.ErrNotFound)
	}
	return nil
}
