package services

import (
	"fmt"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
)

// CartService handles the per-user cart and wishlist.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the user's cart, creating an empty one on first
// access so the storefront never sees a missing cart.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateCart(userID)
}

// AddToCart adds one unit of a product to the user's cart, creating the
// cart on first use. Inactive products and quantities beyond available
// stock are rejected.
func (s *CartService) AddToCart(userID, productID string) (*models.Cart, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive || product.StockQuantity <= 0 {
		return nil, fmt.Errorf("product %s is out of stock: %w", product.Name, models.ErrInsufficientStock)
	}

	cart, err := s.cartRepo.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	newQuantity := 1
	existing, err := s.cartRepo.GetCartItem(cart.ID, productID)
	if err == nil {
		newQuantity = existing.Quantity + 1
	}
	if newQuantity > product.StockQuantity {
		return nil, fmt.Errorf("requested quantity for %s exceeds stock: %w", product.Name, models.ErrInsufficientStock)
	}

	if existing != nil {
		if err := s.cartRepo.SetCartItemQuantity(cart.ID, productID, newQuantity); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.cartRepo.AddCartItem(cart.ID, productID, 1); err != nil {
			return nil, err
		}
	}
	return s.cartRepo.GetCart(userID)
}

// UpdateQuantity overwrites the quantity of a cart line. A quantity of
// zero or less removes the line.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := s.cartRepo.RemoveCartItem(cart.ID, productID); err != nil {
			return nil, err
		}
	} else if err := s.cartRepo.SetCartItemQuantity(cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetCart(userID)
}

// RemoveFromCart deletes a cart line.
func (s *CartService) RemoveFromCart(userID, productID string) error {
	cart, err := s.cartRepo.GetCart(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveCartItem(cart.ID, productID)
}

// EmptyCart deletes every line of the user's cart.
func (s *CartService) EmptyCart(userID string) error {
	cart, err := s.cartRepo.GetCart(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.EmptyCart(cart.ID)
}

// GetWishlist returns the user's wishlist, creating an empty one on
// first access.
func (s *CartService) GetWishlist(userID string) (*models.Wishlist, error) {
	return s.cartRepo.GetOrCreateWishlist(userID)
}

// AddToWishlist adds a product to the wishlist, creating the wishlist on
// first use. Adding a product that is already present fails with
// models.ErrDuplicate rather than silently succeeding.
func (s *CartService) AddToWishlist(userID, productID string) (*models.WishlistItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	wishlist, err := s.cartRepo.GetOrCreateWishlist(userID)
	if err != nil {
		return nil, err
	}
	return s.cartRepo.AddWishlistItem(wishlist.ID, productID)
}

// RemoveFromWishlist deletes a wishlist entry.
func (s *CartService) RemoveFromWishlist(userID, productID string) error {
	wishlist, err := s.cartRepo.GetWishlist(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveWishlistItem(wishlist.ID, productID)
}
