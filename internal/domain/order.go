package domain

// Order represents an item ordered by a user.
//
// UserID must reference an existing user at the moment the order is
// created. The reference is checked once at creation and never again: an
// order is not invalidated when its user is later deleted.
type Order struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	// Total is the price in USD; optional, zero means "not provided".
	Total float64 `json:"total,omitempty"`
}

// NewOrder creates an Order with the given attributes and no assigned ID.
// The store assigns the ID on insert. Returns an error if validation fails.
func NewOrder(userID int, item string, quantity int, total float64) (*Order, error) {
	order := &Order{
		UserID:   userID,
		Item:     item,
		Quantity: quantity,
		Total:    total,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks if the Order has valid data.
// Returns an error if any field fails validation.
func (o *Order) Validate() error {
	if o.UserID <= 0 {
		return ErrInvalidUserRef
	}

	if len(o.Item) < 1 || len(o.Item) > 100 {
		return ErrEmptyItem
	}

	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if o.Total < 0 {
		return ErrInvalidTotal
	}

	return nil
}
