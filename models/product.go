package models

import "fmt"

// Product is a line item in a user's shopcart. The pair (UserID, ProductID) is unique.
type Product struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    string  `gorm:"size:63;not null;uniqueIndex:idx_products_user_product"`
	ProductID string  `gorm:"size:63;not null;uniqueIndex:idx_products_user_product"`
	Name      string  `gorm:"size:63;not null"`
	Quantity  float64 `gorm:"not null"`
	Price     float64 `gorm:"not null;index"`
	Time      Date    `gorm:"not null"`
}

func (p Product) String() string {
	return fmt.Sprintf("<Product %s in user %s's shopcart>", p.Name, p.UserID)
}

// Serialize renders the product as a JSON-ready map.
func (p Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"user_id":    p.UserID,
		"product_id": p.ProductID,
		"name":       p.Name,
		"quantity":   p.Quantity,
		"price":      p.Price,
		"time":       p.Time.String(),
	}
}

// Deserialize fills the product from an untyped payload. The id is left untouched.
// A missing time defaults to today.
func (p *Product) Deserialize(data interface{}) error {
	fields, err := asPayload(data, "Product")
	if err != nil {
		return err
	}

	userID, err := requireString(fields, "user_id", "Product")
	if err != nil {
		return err
	}
	productID, err := requireString(fields, "product_id", "Product")
	if err != nil {
		return err
	}
	name, err := requireString(fields, "name", "Product")
	if err != nil {
		return err
	}
	quantity, err := requireFloat(fields, "quantity", "Product")
	if err != nil {
		return err
	}
	price, err := requireFloat(fields, "price", "Product")
	if err != nil {
		return err
	}
	if price < 0 {
		return NewDataValidationError("Invalid Product: price must not be negative, got %v", price)
	}
	if quantity <= 0 {
		return NewDataValidationError("Invalid Product: quantity must be greater than zero, got %v", quantity)
	}

	day := Today()
	if raw, ok := fields["time"]; ok && raw != nil {
		s, isString := raw.(string)
		if !isString {
			return NewDataValidationError("Invalid Product: time must be a YYYY-MM-DD string")
		}
		if day, err = ParseDate(s); err != nil {
			return NewDataValidationError("Invalid Product: time %q is not an ISO-8601 date", s)
		}
	}

	p.UserID = userID
	p.ProductID = productID
	p.Name = name
	p.Quantity = quantity
	p.Price = price
	p.Time = day
	return nil
}

// DeserializeFor is Deserialize scoped to the shopcart of userID: a missing
// user_id is taken from the shopcart and a different one is rejected.
func (p *Product) DeserializeFor(userID string, data interface{}) error {
	fields, err := asPayload(data, "Product")
	if err != nil {
		return err
	}
	if fields, err = withScope(fields, "user_id", userID, "Product"); err != nil {
		return err
	}
	return p.Deserialize(fields)
}

// DeserializeItem is DeserializeFor with product_id scoped the same way, for
// payloads addressed to a single line item.
func (p *Product) DeserializeItem(userID, productID string, data interface{}) error {
	fields, err := asPayload(data, "Product")
	if err != nil {
		return err
	}
	if fields, err = withScope(fields, "product_id", productID, "Product"); err != nil {
		return err
	}
	return p.DeserializeFor(userID, fields)
}

// DeserializeProducts turns a JSON array into products owned by userID.
func DeserializeProducts(userID string, data interface{}) ([]Product, error) {
	if data == nil {
		return []Product{}, nil
	}
	items, ok := data.([]interface{})
	if !ok {
		return nil, NewDataValidationError("Invalid Shopcart: products must be a list")
	}
	products := make([]Product, 0, len(items))
	for _, item := range items {
		var product Product
		if err := product.DeserializeFor(userID, item); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
