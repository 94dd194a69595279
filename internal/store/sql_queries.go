package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	createCart = `INSERT INTO carts (user_id, total)
    VALUES ($1, $2)
    RETURNING cart_id;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	findCartByUserID = `SELECT cart_id, user_id, total
    FROM carts
    WHERE user_id = $1;`

	findCartItems = `SELECT i.item_id, i.name, i.price, i.description
		FROM cart_items ci
		JOIN items i ON i.item_id = ci.item_id
		WHERE ci.cart_id = $1
		ORDER BY ci.position;`

	updateCartTotal = `UPDATE carts
		SET total = $1
		WHERE cart_id = $2;`

	deleteCartItems = `DELETE FROM cart_items
		WHERE cart_id = $1;`

	listItems = `SELECT item_id, name, price, description
		FROM items
		ORDER BY item_id;`

	findItemByID = `SELECT item_id, name, price, description
		FROM items
		WHERE item_id = $1;`

	createOrder = `INSERT INTO orders (user_id, total)
    VALUES ($1, $2)
    RETURNING order_id, created_at;`

	findOrdersByUserID = `SELECT order_id, user_id, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, order_id DESC;`
)

// queryBuilder is the shared squirrel builder configured for $N placeholders,
// which both supported backends understand.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindItemsByName builds the exact-match catalog search query.
func buildFindItemsByName(name string) (string, []any, error) {
	return queryBuilder.
		Select("item_id", "name", "price", "description").
		From("items").
		Where(sq.Eq{"name": name}).
		OrderBy("item_id").
		ToSql()
}

// buildInsertCartItems builds a bulk INSERT for the cart's item sequence.
// One row per slot; position preserves the in-memory order.
func buildInsertCartItems(cartID int64, items []models.Item) (string, []any, error) {
	insert := queryBuilder.
		Insert("cart_items").
		Columns("cart_id", "item_id", "position")

	for position, item := range items {
		insert = insert.Values(cartID, item.ItemID, position)
	}

	return insert.ToSql()
}

// buildInsertOrderItems builds a bulk INSERT for an order's snapshot items.
func buildInsertOrderItems(orderID int64, items []models.Item) (string, []any, error) {
	insert := queryBuilder.
		Insert("order_items").
		Columns("order_id", "item_id", "position")

	for position, item := range items {
		insert = insert.Values(orderID, item.ItemID, position)
	}

	return insert.ToSql()
}

// buildFindOrderItems builds the query that loads the item snapshots for a
// set of orders in one round trip.
func buildFindOrderItems(orderIDs []int64) (string, []any, error) {
	return queryBuilder.
		Select("oi.order_id", "i.item_id", "i.name", "i.price", "i.description").
		From("order_items oi").
		Join("items i ON i.item_id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.order_id", "oi.position").
		ToSql()
}
