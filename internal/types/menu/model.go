package menu

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	MealType    MealType `json:"mealType"`
	IsVeg       bool     `json:"isVeg"`
	Rating      float64  `json:"rating"`
	PrepTime    string   `json:"prepTime"`
}
