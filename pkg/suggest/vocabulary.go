package suggest

// Vocabulary is the fixed starter set shown before the list has history.
// Order matters; it is the head of the suggestion pool.
var Vocabulary = []string{
	"Milk",
	"Bread",
	"Eggs",
	"Butter",
	"Cheese",
	"Yogurt",
	"Apples",
	"Bananas",
	"Tomatoes",
	"Cucumbers",
	"Onions",
	"Potatoes",
	"Carrots",
	"Chicken",
	"Ground beef",
	"Rice",
	"Pasta",
	"Olive oil",
	"Coffee",
	"Tea",
	"Sugar",
	"Salt",
	"Toilet paper",
	"Dish soap",
}
