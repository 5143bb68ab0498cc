package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samurai-nutrition/internal/models"
	"samurai-nutrition/internal/repositories"
)

func TestCartRepositoryLifecycle(t *testing.T) {
	db := setupDB(t)
	carts := repositories.NewGORMCartRepository(db)
	product := seedProduct(t, db, 10)

	// The cart is created lazily on first access.
	cart, err := carts.GetOrCreateCart("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.UserID)
	assert.Empty(t, cart.Items)

	// A second lookup returns the same cart, not a duplicate.
	again, err := carts.GetOrCreateCart("u1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	item, err := carts.AddCartItem(cart.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	assert.NoError(t, carts.SetCartItemQuantity(cart.ID, product.ID, 5))
	loaded, err := carts.GetCart("u1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 5, loaded.Items[0].Quantity)

	assert.NoError(t, carts.RemoveCartItem(cart.ID, product.ID))
	loaded, err = carts.GetCart("u1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestCartRepositoryEmptyCart(t *testing.T) {
	db := setupDB(t)
	carts := repositories.NewGORMCartRepository(db)
	product := seedProduct(t, db, 10)

	cart, err := carts.GetOrCreateCart("u1")
	require.NoError(t, err)
	_, err = carts.AddCartItem(cart.ID, product.ID, 3)
	require.NoError(t, err)

	assert.NoError(t, carts.EmptyCart(cart.ID))
	loaded, err := carts.GetCart("u1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestWishlistRepositoryDuplicate(t *testing.T) {
	db := setupDB(t)
	carts := repositories.NewGORMCartRepository(db)
	product := seedProduct(t, db, 10)

	wishlist, err := carts.GetOrCreateWishlist("u1")
	require.NoError(t, err)

	_, err = carts.AddWishlistItem(wishlist.ID, product.ID)
	assert.NoError(t, err)

	// Wishing for the same product twice is a conflict.
	_, err = carts.AddWishlistItem(wishlist.ID, product.ID)
	assert.ErrorIs(t, err, models.ErrDuplicate)

	assert.NoError(t, carts.RemoveWishlistItem(wishlist.ID, product.ID))
	loaded, err := carts.GetWishlist("u1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}
