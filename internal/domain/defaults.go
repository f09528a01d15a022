package domain

// DefaultCategories are seeded for a user with no categories. Ids are fixed
// so seeding stays idempotent.
var DefaultCategories = []Category{
	{ID: "cat_1", Name: "Alimentação", Color: "#10b981", IsDefault: true},
	{ID: "cat_2", Name: "Moradia", Color: "#f59e0b", IsDefault: true},
	{ID: "cat_3", Name: "Transporte", Color: "#3b82f6", IsDefault: true},
	{ID: "cat_4", Name: "Saúde", Color: "#ef4444", IsDefault: true},
	{ID: "cat_5", Name: "Lazer", Color: "#8b5cf6", IsDefault: true},
	{ID: "cat_6", Name: "Educação", Color: "#ec4899", IsDefault: true},
	{ID: "cat_7", Name: "Investimentos", Color: "#6366f1", IsDefault: true},
	{ID: "cat_8", Name: "Salário", Color: "#14b8a6", IsDefault: true},
	{ID: "cat_9", Name: "Telefonia", Color: "#0ea5e9", IsDefault: true},
	{ID: "cat_10", Name: "Manutenções da casa", Color: "#f97316", IsDefault: true},
}

// DefaultCategoryColor is used when a category has no color.
const DefaultCategoryColor = "#6366f1"

// NewState returns an empty state carrying the default categories.
func NewState() State {
	cats := make([]Category, len(DefaultCategories))
	copy(cats, DefaultCategories)
	return State{Categories: cats}
}
