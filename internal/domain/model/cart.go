package model

// defaultUnitPrice is used when the upstream omits a product price on a
// cart line. Inherited from the upstream contract, not a pricing decision.
const defaultUnitPrice = 89.99

// CartItem is one cart line as served by the upstream cart endpoint.
// The upstream populates the full product document under the productId key.
type CartItem struct {
	Product  Product `json:"productId"`
	Quantity int     `json:"quantity"`
}

// UnitPrice returns the product price, falling back when the upstream
// omitted it.
func (i CartItem) UnitPrice() float64 {
	if i.Product.Price > 0 {
		return i.Product.Price
	}
	return defaultUnitPrice
}

// LineTotal returns price x quantity for the line. Negative quantities
// contribute nothing; price and quantity are non-negative by contract.
func (i CartItem) LineTotal() float64 {
	if i.Quantity <= 0 {
		return 0
	}
	return i.UnitPrice() * float64(i.Quantity)
}

// Cart is the full set of lines for the current user.
type Cart []CartItem

// Subtotal sums line totals across the cart.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c {
		total += item.LineTotal()
	}
	return total
}

// Order-summary rates inherited from the upstream storefront: flat shipping
// plus a 10% tax on the subtotal.
const (
	flatShippingFee = 10.0
	taxRate         = 0.10
)

// OrderSummary is the totals panel shown next to the cart lines.
type OrderSummary struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Summary computes the order totals. An empty cart owes nothing, shipping
// included.
func (c Cart) Summary() OrderSummary {
	subtotal := c.Subtotal()
	if subtotal <= 0 {
		return OrderSummary{}
	}
	tax := subtotal * taxRate
	return OrderSummary{
		Subtotal: subtotal,
		Shipping: flatShippingFee,
		Tax:      tax,
		Total:    subtotal + flatShippingFee + tax,
	}
}
