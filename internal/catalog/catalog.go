// Package catalog holds the curated list of products the price checker
// tracks, together with the static fallback estimates used when live
// price data is unavailable. Pure data, loaded once at process start.
package catalog

import "github.com/pricepulse/backend/internal/domain"

// Products returns the full curated catalog. The returned slice is a copy;
// callers may reorder it freely.
func Products() []domain.CatalogProduct {
	out := make([]domain.CatalogProduct, len(products))
	copy(out, products)
	return out
}

// ByID returns the catalog product with the given id.
func ByID(id string) (domain.CatalogProduct, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.CatalogProduct{}, false
}

var products = []domain.CatalogProduct{
	// Dairy
	{
		ID: "milk-3pct", DisplayName: "Milk 3%", LocalizedName: "חלב 3%",
		Category: domain.CategoryDairy, Unit: "1L", Icon: "🥛",
		Identifiers: []string{"7290004131074", "7290000042842"},
		SearchTerms: []string{"חלב טרי", "חלב 3%", "milk"},
	},
	{
		ID: "cottage-cheese", DisplayName: "Cottage Cheese 5%", LocalizedName: "קוטג' 5%",
		Category: domain.CategoryDairy, Unit: "250g", Icon: "🧀",
		Identifiers: []string{"7290004127336"},
		SearchTerms: []string{"קוטג", "cottage"},
	},
	{
		ID: "yellow-cheese", DisplayName: "Yellow Cheese Slices", LocalizedName: "גבינה צהובה פרוסה",
		Category: domain.CategoryDairy, Unit: "200g", Icon: "🧀",
		Identifiers: []string{"7290000066318"},
		SearchTerms: []string{"גבינה צהובה", "עמק", "גלבוע"},
	},
	{
		ID: "white-cheese", DisplayName: "Soft White Cheese 5%", LocalizedName: "גבינה לבנה 5%",
		Category: domain.CategoryDairy, Unit: "250g", Icon: "🥣",
		Identifiers: []string{"7290004126957"},
		SearchTerms: []string{"גבינה לבנה", "גבינת שמנת"},
	},
	{
		ID: "butter", DisplayName: "Butter", LocalizedName: "חמאה",
		Category: domain.CategoryDairy, Unit: "100g", Icon: "🧈",
		Identifiers: []string{"7290000042732"},
		SearchTerms: []string{"חמאה"},
	},
	{
		ID: "eggs-l", DisplayName: "Eggs (L, 12)", LocalizedName: "ביצים L תריסר",
		Category: domain.CategoryDairy, Unit: "12", Icon: "🥚",
		Identifiers: []string{"7290013286314"},
		SearchTerms: []string{"ביצים", "ביצי חופש", "eggs"},
	},
	{
		ID: "plain-yogurt", DisplayName: "Plain Yogurt 3%", LocalizedName: "יוגורט טבעי 3%",
		Category: domain.CategoryDairy, Unit: "500g", Icon: "🥛",
		Identifiers: []string{"7290004128563"},
		SearchTerms: []string{"יוגורט", "yogurt"},
	},

	// Produce
	{
		ID: "tomatoes", DisplayName: "Tomatoes", LocalizedName: "עגבניות",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🍅",
		Identifiers: []string{"7290000000022"},
		SearchTerms: []string{"עגבניה", "עגבניות"},
	},
	{
		ID: "cucumbers", DisplayName: "Cucumbers", LocalizedName: "מלפפונים",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🥒",
		Identifiers: []string{"7290000000015"},
		SearchTerms: []string{"מלפפון", "מלפפונים"},
	},
	{
		ID: "onions", DisplayName: "Onions", LocalizedName: "בצל יבש",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🧅",
		Identifiers: []string{"7290000000053"},
		SearchTerms: []string{"בצל"},
	},
	{
		ID: "potatoes", DisplayName: "Potatoes", LocalizedName: "תפוחי אדמה",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🥔",
		Identifiers: []string{"7290000000046"},
		SearchTerms: []string{"תפוח אדמה", "תפוחי אדמה"},
	},
	{
		ID: "carrots", DisplayName: "Carrots", LocalizedName: "גזר",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🥕",
		Identifiers: []string{"7290000000077"},
		SearchTerms: []string{"גזר"},
	},
	{
		ID: "red-peppers", DisplayName: "Red Peppers", LocalizedName: "פלפל אדום",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🫑",
		Identifiers: []string{"7290000000107"},
		SearchTerms: []string{"פלפל אדום", "גמבה"},
	},
	{
		ID: "bananas", DisplayName: "Bananas", LocalizedName: "בננות",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🍌",
		Identifiers: []string{"7290000000039"},
		SearchTerms: []string{"בננה", "בננות"},
	},
	{
		ID: "apples", DisplayName: "Apples", LocalizedName: "תפוחי עץ",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🍎",
		Identifiers: []string{"7290000000084"},
		SearchTerms: []string{"תפוח עץ", "תפוחים"},
	},
	{
		ID: "avocado", DisplayName: "Avocado", LocalizedName: "אבוקדו",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🥑",
		Identifiers: []string{"7290000000121"},
		SearchTerms: []string{"אבוקדו"},
	},
	{
		ID: "lemons", DisplayName: "Lemons", LocalizedName: "לימונים",
		Category: domain.CategoryProduce, Unit: "1kg", Icon: "🍋",
		Identifiers: []string{"7290000000138"},
		SearchTerms: []string{"לימון"},
	},

	// Meat & fish
	{
		ID: "chicken-breast", DisplayName: "Chicken Breast", LocalizedName: "חזה עוף",
		Category: domain.CategoryMeat, Unit: "1kg", Icon: "🍗",
		Identifiers: []string{"7290008012348"},
		SearchTerms: []string{"חזה עוף", "פרגית"},
	},
	{
		ID: "whole-chicken", DisplayName: "Whole Chicken", LocalizedName: "עוף שלם",
		Category: domain.CategoryMeat, Unit: "1kg", Icon: "🐔",
		Identifiers: []string{"7290008012355"},
		SearchTerms: []string{"עוף שלם", "עוף טרי"},
	},
	{
		ID: "ground-beef", DisplayName: "Ground Beef", LocalizedName: "בשר בקר טחון",
		Category: domain.CategoryMeat, Unit: "1kg", Icon: "🥩",
		Identifiers: []string{"7290008012423"},
		SearchTerms: []string{"בשר טחון", "טחון בקר"},
	},
	{
		ID: "salmon-fillet", DisplayName: "Salmon Fillet", LocalizedName: "פילה סלמון",
		Category: domain.CategoryMeat, Unit: "1kg", Icon: "🐟",
		Identifiers: []string{"7290008012485"},
		SearchTerms: []string{"סלמון", "פילה דג"},
	},

	// Bakery
	{
		ID: "white-bread", DisplayName: "Sliced White Bread", LocalizedName: "לחם אחיד פרוס",
		Category: domain.CategoryBakery, Unit: "750g", Icon: "🍞",
		Identifiers: []string{"7290002807377"},
		SearchTerms: []string{"לחם אחיד", "לחם לבן", "לחם פרוס"},
	},
	{
		ID: "whole-wheat-bread", DisplayName: "Whole Wheat Bread", LocalizedName: "לחם מחיטה מלאה",
		Category: domain.CategoryBakery, Unit: "750g", Icon: "🍞",
		Identifiers: []string{"7290002807421"},
		SearchTerms: []string{"לחם מלא", "חיטה מלאה"},
	},
	{
		ID: "pitot", DisplayName: "Pita Bread (10)", LocalizedName: "פיתות",
		Category: domain.CategoryBakery, Unit: "10", Icon: "🫓",
		Identifiers: []string{"7290002807520"},
		SearchTerms: []string{"פיתות", "פיתה"},
	},

	// Pantry
	{
		ID: "rice", DisplayName: "White Rice", LocalizedName: "אורז לבן",
		Category: domain.CategoryPantry, Unit: "1kg", Icon: "🍚",
		Identifiers: []string{"7290000554105"},
		SearchTerms: []string{"אורז", "אורז פרסי"},
	},
	{
		ID: "pasta", DisplayName: "Pasta (Spaghetti)", LocalizedName: "פסטה ספגטי",
		Category: domain.CategoryPantry, Unit: "500g", Icon: "🍝",
		Identifiers: []string{"7290000554208"},
		SearchTerms: []string{"ספגטי", "פסטה"},
	},
	{
		ID: "flour", DisplayName: "White Flour", LocalizedName: "קמח לבן",
		Category: domain.CategoryPantry, Unit: "1kg", Icon: "🌾",
		Identifiers: []string{"7290000554302"},
		SearchTerms: []string{"קמח"},
	},
	{
		ID: "sugar", DisplayName: "White Sugar", LocalizedName: "סוכר לבן",
		Category: domain.CategoryPantry, Unit: "1kg", Icon: "🧂",
		Identifiers: []string{"7290000554401"},
		SearchTerms: []string{"סוכר"},
	},
	{
		ID: "olive-oil", DisplayName: "Olive Oil", LocalizedName: "שמן זית",
		Category: domain.CategoryPantry, Unit: "750ml", Icon: "🫒",
		Identifiers: []string{"7290000554502"},
		SearchTerms: []string{"שמן זית", "כתית מעולה"},
	},
	{
		ID: "canola-oil", DisplayName: "Canola Oil", LocalizedName: "שמן קנולה",
		Category: domain.CategoryPantry, Unit: "1L", Icon: "🛢️",
		Identifiers: []string{"7290000554601"},
		SearchTerms: []string{"שמן קנולה"},
	},
	{
		ID: "tahini", DisplayName: "Raw Tahini", LocalizedName: "טחינה גולמית",
		Category: domain.CategoryPantry, Unit: "500g", Icon: "🥣",
		Identifiers: []string{"7290000554700"},
		SearchTerms: []string{"טחינה"},
	},
	{
		ID: "hummus", DisplayName: "Hummus Spread", LocalizedName: "חומוס מוכן",
		Category: domain.CategoryPantry, Unit: "400g", Icon: "🥙",
		Identifiers: []string{"7290000554809"},
		SearchTerms: []string{"חומוס", "hummus"},
	},
	{
		ID: "canned-tuna", DisplayName: "Canned Tuna (4-pack)", LocalizedName: "טונה בשמן רביעייה",
		Category: domain.CategoryPantry, Unit: "4x160g", Icon: "🐟",
		Identifiers: []string{"7290000554908"},
		SearchTerms: []string{"טונה"},
	},
	{
		ID: "tomato-paste", DisplayName: "Tomato Paste", LocalizedName: "רסק עגבניות",
		Category: domain.CategoryPantry, Unit: "2x100g", Icon: "🥫",
		Identifiers: []string{"7290000555004"},
		SearchTerms: []string{"רסק עגבניות", "רסק"},
	},

	// Beverages
	{
		ID: "instant-coffee", DisplayName: "Instant Coffee", LocalizedName: "קפה נמס",
		Category: domain.CategoryBeverages, Unit: "200g", Icon: "☕",
		Identifiers: []string{"7290000555103"},
		SearchTerms: []string{"קפה נמס", "נס קפה"},
	},
	{
		ID: "cola", DisplayName: "Cola 1.5L", LocalizedName: "קולה 1.5 ליטר",
		Category: domain.CategoryBeverages, Unit: "1.5L", Icon: "🥤",
		Identifiers: []string{"7290000555202"},
		SearchTerms: []string{"קולה", "cola"},
	},
	{
		ID: "orange-juice", DisplayName: "Orange Juice 1L", LocalizedName: "מיץ תפוזים",
		Category: domain.CategoryBeverages, Unit: "1L", Icon: "🧃",
		Identifiers: []string{"7290000555301"},
		SearchTerms: []string{"מיץ תפוזים", "תפוזים סחוט"},
	},
	{
		ID: "mineral-water", DisplayName: "Mineral Water (6-pack)", LocalizedName: "מים מינרליים שישייה",
		Category: domain.CategoryBeverages, Unit: "6x1.5L", Icon: "💧",
		Identifiers: []string{"7290000555400"},
		SearchTerms: []string{"מים מינרליים", "שישיית מים"},
	},

	// Snacks
	{
		ID: "chocolate-bar", DisplayName: "Milk Chocolate Bar", LocalizedName: "שוקולד חלב",
		Category: domain.CategorySnacks, Unit: "100g", Icon: "🍫",
		Identifiers: []string{"7290000555509"},
		SearchTerms: []string{"שוקולד חלב", "טבלת שוקולד"},
	},
	{
		ID: "peanut-snack", DisplayName: "Peanut Snack", LocalizedName: "חטיף בוטנים",
		Category: domain.CategorySnacks, Unit: "80g", Icon: "🥜",
		Identifiers: []string{"7290000555608"},
		SearchTerms: []string{"במבה", "חטיף בוטנים"},
	},

	// Household
	{
		ID: "toilet-paper", DisplayName: "Toilet Paper (32)", LocalizedName: "נייר טואלט 32 גלילים",
		Category: domain.CategoryHousehold, Unit: "32", Icon: "🧻",
		Identifiers: []string{"7290000555707"},
		SearchTerms: []string{"נייר טואלט"},
	},
	{
		ID: "dish-soap", DisplayName: "Dish Soap", LocalizedName: "נוזל כלים",
		Category: domain.CategoryHousehold, Unit: "750ml", Icon: "🧴",
		Identifiers: []string{"7290000555806"},
		SearchTerms: []string{"נוזל כלים", "סבון כלים"},
	},
}
