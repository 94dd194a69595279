package models

// ModifyCartRequest is the payload of the addToCart and removeFromCart
// operations. It names a user and an item; both must exist, absence of either
// is a not-found error rather than a silent no-op.
type ModifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int64  `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateUserRequest is the payload of the account creation operation.
// Password and ConfirmPassword must match and satisfy the minimum length
// policy before anything is persisted.
type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest carries the credentials presented during authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
