package models

// Ingredient categories as the catalog service reports them.
const (
	IngredientTypeBun   = "bun"
	IngredientTypeSauce = "sauce"
	IngredientTypeMain  = "main"
)

// Ingredient is one orderable catalog item. It is owned by the remote
// service and never mutated on the client.
type Ingredient struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Proteins      int    `json:"proteins"`
	Fat           int    `json:"fat"`
	Carbohydrates int    `json:"carbohydrates"`
	Calories      int    `json:"calories"`
	Price         int    `json:"price"`
	Image         string `json:"image"`
	ImageMobile   string `json:"image_mobile"`
	ImageLarge    string `json:"image_large"`
}

// IsBun reports whether the ingredient fills the bun slot of a burger.
func (i Ingredient) IsBun() bool {
	return i.Type == IngredientTypeBun
}

// ConstructorIngredient is an Ingredient placed into the burger under
// construction. The same catalog item may be placed several times, so each
// placement carries its own client-generated instance id.
type ConstructorIngredient struct {
	Ingredient
	InstanceID string `json:"id"`
}
