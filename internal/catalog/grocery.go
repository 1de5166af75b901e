package catalog

// GroceryItem is one entry in the static staples list.
type GroceryItem struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Essential bool   `json:"essential"`
}

// GroceryCategory groups staples for the shopping screen.
type GroceryCategory struct {
	Key   string        `json:"key"`
	Name  string        `json:"name"`
	Items []GroceryItem `json:"items"`
}

// GroceryCategories is the comprehensive staples catalog shown alongside the
// dynamically generated shortfall list.
var GroceryCategories = []GroceryCategory{
	{
		Key:  "pantry-staples",
		Name: "Pantry Staples",
		Items: []GroceryItem{
			{Name: "Rice (Basmati/Regular)", Quantity: "2 kg", Essential: true},
			{Name: "Atta (Whole Wheat Flour)", Quantity: "1 kg", Essential: true},
			{Name: "Dal - Toor/Arhar", Quantity: "500g", Essential: true},
			{Name: "Dal - Moong", Quantity: "500g"},
			{Name: "Dal - Chana", Quantity: "500g"},
			{Name: "Besan (Gram Flour)", Quantity: "500g", Essential: true},
			{Name: "Rava/Semolina", Quantity: "500g", Essential: true},
			{Name: "Poha (Flattened Rice)", Quantity: "500g", Essential: true},
			{Name: "Maggi Noodles", Quantity: "8 packets", Essential: true},
			{Name: "Bread (White/Brown)", Quantity: "1 loaf", Essential: true},
			{Name: "Sabudana", Quantity: "250g"},
		},
	},
	{
		Key:  "dairy-eggs",
		Name: "Dairy & Eggs",
		Items: []GroceryItem{
			{Name: "Milk (Full Cream/Toned)", Quantity: "2L/week", Essential: true},
			{Name: "Curd/Dahi", Quantity: "500g", Essential: true},
			{Name: "Butter", Quantity: "100g", Essential: true},
			{Name: "Ghee", Quantity: "200g", Essential: true},
			{Name: "Paneer", Quantity: "200g"},
			{Name: "Eggs", Quantity: "12 eggs", Essential: true},
			{Name: "Cream", Quantity: "100ml"},
		},
	},
	{
		Key:  "vegetables",
		Name: "Fresh Vegetables",
		Items: []GroceryItem{
			{Name: "Onion", Quantity: "1 kg", Essential: true},
			{Name: "Tomato", Quantity: "500g", Essential: true},
			{Name: "Potato", Quantity: "1 kg", Essential: true},
			{Name: "Green Chili", Quantity: "100g", Essential: true},
			{Name: "Garlic", Quantity: "100g", Essential: true},
			{Name: "Ginger", Quantity: "50g", Essential: true},
			{Name: "Coriander Leaves", Quantity: "1 bunch", Essential: true},
			{Name: "Curry Leaves", Quantity: "1 sprig"},
			{Name: "Lemon", Quantity: "6 pieces", Essential: true},
		},
	},
	{
		Key:  "fruits",
		Name: "Fruits",
		Items: []GroceryItem{
			{Name: "Banana", Quantity: "6 pieces", Essential: true},
			{Name: "Apple", Quantity: "4 pieces"},
			{Name: "Dates (Khajoor)", Quantity: "200g"},
		},
	},
	{
		Key:  "spices-oil",
		Name: "Spices & Oil",
		Items: []GroceryItem{
			{Name: "Cooking Oil", Quantity: "1L", Essential: true},
			{Name: "Mustard Oil", Quantity: "500ml"},
			{Name: "Turmeric", Quantity: "100g", Essential: true},
			{Name: "Cumin", Quantity: "100g", Essential: true},
			{Name: "Garam Masala", Quantity: "50g"},
			{Name: "Sambar Powder", Quantity: "100g"},
			{Name: "Mustard Seeds", Quantity: "100g"},
			{Name: "Salt", Quantity: "1 kg", Essential: true},
		},
	},
}
