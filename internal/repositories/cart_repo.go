package repositories

import "samurai-nutrition/internal/models"

// CartRepository defines the interface for cart and wishlist data access.
// Both collections exist at most once per user and are created lazily on
// the first add.
type CartRepository interface {
	GetCart(userID string) (*models.Cart, error)
	GetOrCreateCart(userID string) (*models.Cart, error)
	AddCartItem(cartID, productID string, quantity int) (*models.CartItem, error)
	GetCartItem(cartID, productID string) (*models.CartItem, error)
	SetCartItemQuantity(cartID, productID string, quantity int) error
	RemoveCartItem(cartID, productID string) error
	EmptyCart(cartID string) error

	GetWishlist(userID string) (*models.Wishlist, error)
	GetOrCreateWishlist(userID string) (*models.Wishlist, error)
	// AddWishlistItem returns models.ErrDuplicate when the product is
	// already on the wishlist.
	AddWishlistItem(wishlistID, productID string) (*models.WishlistItem, error)
	RemoveWishlistItem(wishlistID, productID string) error
}
