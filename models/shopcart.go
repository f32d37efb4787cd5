package models

import "fmt"

// Shopcart is the single cart owned by a user. UserID is the business key.
type Shopcart struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   string    `gorm:"size:63;not null;uniqueIndex"` // one cart per user
	Products []Product `gorm:"foreignKey:UserID;references:UserID"`
}

func (s Shopcart) String() string {
	return fmt.Sprintf("<Shopcart of user %s with %d products>", s.UserID, len(s.Products))
}

// Serialize renders the shopcart and its products as a JSON-ready map.
func (s Shopcart) Serialize() map[string]interface{} {
	products := make([]map[string]interface{}, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, p.Serialize())
	}
	return map[string]interface{}{
		"id":       s.ID,
		"user_id":  s.UserID,
		"products": products,
	}
}

// Deserialize fills the shopcart from an untyped payload. Only user_id is
// required; products default to an empty list.
func (s *Shopcart) Deserialize(data interface{}) error {
	fields, err := asPayload(data, "Shopcart")
	if err != nil {
		return err
	}
	userID, err := requireString(fields, "user_id", "Shopcart")
	if err != nil {
		return err
	}
	products, err := DeserializeProducts(userID, fields["products"])
	if err != nil {
		return err
	}
	s.UserID = userID
	s.Products = products
	return nil
}
