package model

// MenuCollection is the collection holding menu items.
const MenuCollection = "menuitem"

// MenuItem is the stored and response shape of a dish. The document id and
// timestamps added by the database layer are not part of it, so decoding a
// raw document into MenuItem strips them.
type MenuItem struct {
	Name         string  `bson:"name" json:"name"`
	Description  *string `bson:"description" json:"description"`
	Price        float64 `bson:"price" json:"price"`
	Category     string  `bson:"category" json:"category"`
	IsVegetarian bool    `bson:"is_vegetarian" json:"is_vegetarian"`
	IsSpicy      bool    `bson:"is_spicy" json:"is_spicy"`
}

type CreateMenuItemInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  *string  `json:"description" validate:"omitempty"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Category     string   `json:"category" validate:"required"`
	IsVegetarian *bool    `json:"is_vegetarian"`
	IsSpicy      *bool    `json:"is_spicy"`
}
