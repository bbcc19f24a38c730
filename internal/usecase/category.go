package usecase

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/ecolens/backend/internal/domain"
)

// tvSizeRegex matches a diagonal size token like `55 inch`, `55-inch` or `55"`
var tvSizeRegex = regexp.MustCompile(`(\d+)[- ]?inch|(\d+)[- ]?"`)

// Category keyword tables. Classification tests run against the lowercased
// title in a fixed priority order; the first matching table wins.

var largeApplianceKeywords = []string{
	// Cooling appliances
	"refrigerator", "fridge", "freezer", "mini fridge", "wine cooler", "beverage cooler",
	// Laundry appliances
	"washing machine", "washer", "dryer", "washer dryer combo", "clothes steamer",
	// Kitchen appliances
	"dishwasher", "oven", "stove", "range", "microwave", "air fryer", "slow cooker", "pressure cooker",
	"instant pot", "stand mixer", "food processor", "blender", "juicer",
	// Heating and cooling
	"air conditioner", "portable ac", "heater", "space heater", "dehumidifier", "humidifier",
	// Cleaning appliances
	"vacuum cleaner", "robot vacuum", "carpet cleaner", "steam cleaner",
	// Other large appliances
	"water heater", "water dispenser", "trash compactor", "garbage disposal",
}

var tvKeywords = []string{
	"tv", "television", "monitor", "smart tv", "led tv", "oled tv", "qled tv", "lcd tv",
	"plasma tv", "4k tv", "8k tv", "uhd tv", "hd tv", "curved tv", "flat screen",
	"home theater display", "streaming tv", "android tv", "roku tv", "fire tv",
	"apple tv", "projector", "projection screen",
}

var furnitureKeywords = []string{
	// Seating
	"chair", "sofa", "couch", "loveseat", "sectional", "recliner", "ottoman", "stool", "bench",
	// Tables
	"table", "desk", "coffee table", "end table", "console table", "dining table", "nightstand",
	// Storage
	"bookcase", "bookshelf", "shelf", "shelving", "cabinet", "dresser", "chest of drawers", "wardrobe",
	// Bedroom
	"bed", "mattress", "bed frame", "headboard", "bunk bed", "futon", "daybed", "crib",
	// Office
	"office chair", "computer desk", "filing cabinet", "workstation",
	// Other
	"entertainment center", "tv stand", "accent furniture", "bean bag", "hammock",
}

var electronicsKeywords = []string{
	// Computing
	"laptop", "computer", "desktop", "chromebook", "notebook", "macbook", "pc", "server",
	"monitor", "keyboard", "mouse", "webcam", "hard drive", "ssd", "usb drive", "memory card",
	// Mobile devices
	"phone", "smartphone", "iphone", "android", "tablet", "ipad", "e-reader", "kindle",
	// Audio
	"headphones", "earbuds", "earphones", "speaker", "bluetooth speaker", "soundbar", "subwoofer",
	"amplifier", "receiver", "turntable", "record player", "mp3 player", "ipod", "earpods", "airpods",
	// Photography
	"camera", "digital camera", "dslr", "mirrorless camera", "action camera", "gopro", "camcorder",
	"lens", "tripod", "flash",
	// Gaming
	"gaming", "video game", "console", "playstation", "xbox", "nintendo", "switch", "controller",
	// Wearables
	"smartwatch", "fitness tracker", "apple watch", "garmin", "fitbit",
	// Other
	"router", "modem", "printer", "scanner", "drone", "power bank", "charger", "adapter", "cable",
	"smart home", "alexa", "echo", "google home", "ring", "nest",
}

var bookKeywords = []string{
	"book", "novel", "textbook", "cookbook", "paperback", "hardcover", "ebook", "audiobook",
	"journal", "diary", "comic book", "manga", "graphic novel", "anthology", "encyclopedia",
	"dictionary", "thesaurus", "biography", "autobiography", "fiction", "non-fiction",
	"children's book", "coloring book", "workbook", "guidebook", "handbook", "manual",
}

var clothingKeywords = []string{
	// Tops
	"shirt", "t-shirt", "tee", "blouse", "tank top", "polo", "sweater", "sweatshirt", "hoodie",
	"cardigan", "tunic", "jersey", "button-up", "button-down",
	// Bottoms
	"pants", "jeans", "shorts", "skirt", "leggings", "joggers", "sweatpants", "chinos", "khakis",
	"trousers", "capris", "cargo pants",
	// Dresses & suits
	"dress", "gown", "suit", "tuxedo", "blazer", "jumpsuit", "romper", "overalls",
	// Outerwear
	"jacket", "coat", "parka", "windbreaker", "raincoat", "vest", "poncho", "cloak",
	// Underwear & sleepwear
	"underwear", "boxers", "briefs", "panties", "bra", "lingerie", "pajamas", "nightgown", "robe",
	// Footwear
	"shoes", "boots", "sneakers", "sandals", "slippers", "heels", "flats", "loafers", "oxfords",
	"flip flops", "running shoes", "athletic shoes",
	// Accessories
	"hat", "cap", "beanie", "scarf", "gloves", "mittens", "socks", "belt", "tie", "bow tie",
	"suspenders", "wallet", "purse", "handbag", "backpack", "tote", "watch", "jewelry",
	// Specialty
	"swimsuit", "swimwear", "bikini", "trunks", "wetsuit", "uniform", "costume", "formal wear",
	"activewear", "sportswear", "athleisure", "maternity",
}

var toyKeywords = []string{
	// Traditional toys
	"toy", "action figure", "doll", "stuffed animal", "plush", "teddy bear", "building blocks",
	"lego", "puzzle", "board game", "card game", "dice game", "game", "playset", "playhouse",
	"toy car", "remote control", "rc car", "train set", "model kit",
	// Educational toys
	"educational toy", "learning toy", "stem toy", "science kit", "chemistry set", "microscope",
	"telescope", "math toy", "coding toy", "robot kit",
	// Outdoor toys
	"outdoor toy", "playground", "swing set", "slide", "trampoline", "pool toy", "water toy",
	"beach toy", "kite", "frisbee", "ball", "bicycle", "tricycle", "scooter", "skateboard",
	// Baby & toddler toys
	"baby toy", "infant toy", "toddler toy", "rattle", "teether", "activity center", "play mat",
	"stacking toy", "shape sorter", "push toy", "pull toy",
	// Arts & crafts
	"arts and crafts", "craft kit", "art set", "drawing set", "painting set", "clay", "play-doh",
	"coloring set", "bead kit", "jewelry making kit",
	// Video games
	"video game", "console game", "pc game", "mobile game", "vr game", "gaming accessory",
}

var beautyKeywords = []string{
	// Skincare
	"beauty", "skincare", "face wash", "cleanser", "moisturizer", "serum", "toner", "face mask",
	"eye cream", "sunscreen", "lotion", "cream", "exfoliator", "scrub", "anti-aging",
	// Makeup
	"makeup", "cosmetic", "foundation", "concealer", "powder", "blush", "bronzer", "highlighter",
	"eyeshadow", "eyeliner", "mascara", "lipstick", "lip gloss", "lip balm", "makeup remover",
	"makeup brush", "beauty blender", "primer", "setting spray",
	// Hair care
	"shampoo", "conditioner", "hair mask", "hair oil", "hair serum", "hair spray", "dry shampoo",
	"hair gel", "hair mousse", "hair dye", "hair color", "hair treatment", "hair styling",
	"hair dryer", "straightener", "curling iron", "hair brush", "comb",
	// Bath & body
	"body wash", "shower gel", "soap", "bath bomb", "bubble bath", "body scrub", "body lotion",
	"body oil", "hand cream", "foot cream", "deodorant", "antiperspirant",
	// Fragrance
	"perfume", "cologne", "fragrance", "body spray", "eau de toilette", "eau de parfum",
	// Nail care
	"nail polish", "nail care", "nail file", "nail clipper", "cuticle oil", "nail treatment",
	// Tools & accessories
	"beauty tool", "facial roller", "gua sha", "jade roller", "face massager", "beauty device",
	"mirror", "makeup bag", "cosmetic case",
}

var foodKeywords = []string{
	// General food categories
	"food", "snack", "grocery", "gourmet", "organic", "non-gmo", "vegan", "vegetarian", "gluten-free",
	// Beverages
	"drink", "beverage", "coffee", "tea", "juice", "soda", "water", "energy drink", "sports drink",
	"milk", "non-dairy milk", "almond milk", "oat milk", "coconut milk", "smoothie", "shake",
	"wine", "beer", "liquor", "spirits", "cocktail mixer",
	// Snacks
	"chips", "crackers", "popcorn", "pretzels", "nuts", "trail mix", "granola", "protein bar",
	"energy bar", "cereal bar", "chocolate", "candy", "gum", "jerky", "dried fruit",
	// Pantry items
	"cereal", "oatmeal", "pasta", "rice", "grain", "flour", "sugar", "spice", "herb", "seasoning",
	"oil", "vinegar", "sauce", "condiment", "dressing", "syrup", "honey", "jam", "jelly",
	"peanut butter", "spread", "canned food", "soup", "broth", "beans", "vegetables", "fruits",
	// Baking
	"baking", "baking mix", "cake mix", "brownie mix", "cookie mix", "bread mix", "yeast",
	"baking powder", "baking soda", "vanilla extract", "food coloring",
	// Dairy & refrigerated
	"dairy", "cheese", "yogurt", "butter", "margarine", "eggs", "cream", "sour cream", "cream cheese",
	// Meat & seafood
	"meat", "beef", "chicken", "pork", "turkey", "lamb", "fish", "seafood", "shellfish",
	// Frozen foods
	"frozen", "frozen meal", "frozen pizza", "ice cream", "frozen yogurt", "frozen vegetables",
	"frozen fruit", "frozen dessert",
	// International foods
	"international food", "asian food", "mexican food", "italian food", "indian food", "middle eastern food",
}

// containsAny reports whether the text contains any keyword from the list
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// sizeRange is a uniform sampling band for one product family: dimension
// bounds in cm and a weight bound in grams.
type sizeRange struct {
	length [2]float64
	width  [2]float64
	height [2]float64
	weight [2]float64
}

// drawSize samples dimensions and weight from a band. Draw order is fixed
// (length, width, height, weight) so the seeded stream stays reproducible.
func drawSize(rng *rand.Rand, r sizeRange) (domain.Dimensions, float64) {
	dims := domain.Dimensions{
		LengthCM: uniform(rng, r.length[0], r.length[1]),
		WidthCM:  uniform(rng, r.width[0], r.width[1]),
		HeightCM: uniform(rng, r.height[0], r.height[1]),
	}
	return dims, uniform(rng, r.weight[0], r.weight[1])
}

// subRange refines a category band by sub-keyword, e.g. "refrigerator"
// within large appliances. Entries are checked in order; first match wins.
type subRange struct {
	keywords []string
	band     sizeRange
}

var largeApplianceRanges = []subRange{
	{[]string{"refrigerator", "fridge"}, sizeRange{[2]float64{70, 90}, [2]float64{60, 80}, [2]float64{170, 190}, [2]float64{70000, 120000}}},
	{[]string{"freezer"}, sizeRange{[2]float64{60, 80}, [2]float64{60, 70}, [2]float64{85, 160}, [2]float64{40000, 80000}}},
	{[]string{"mini fridge", "wine cooler", "beverage cooler"}, sizeRange{[2]float64{40, 55}, [2]float64{40, 50}, [2]float64{50, 85}, [2]float64{15000, 30000}}},
	{[]string{"washing machine", "washer"}, sizeRange{[2]float64{55, 65}, [2]float64{55, 65}, [2]float64{80, 90}, [2]float64{60000, 80000}}},
	{[]string{"dryer"}, sizeRange{[2]float64{55, 65}, [2]float64{55, 65}, [2]float64{80, 90}, [2]float64{35000, 50000}}},
	{[]string{"washer dryer combo"}, sizeRange{[2]float64{60, 70}, [2]float64{55, 65}, [2]float64{85, 95}, [2]float64{70000, 90000}}},
	{[]string{"dishwasher"}, sizeRange{[2]float64{55, 65}, [2]float64{55, 65}, [2]float64{80, 90}, [2]float64{40000, 50000}}},
	{[]string{"oven", "stove", "range"}, sizeRange{[2]float64{60, 80}, [2]float64{60, 70}, [2]float64{85, 95}, [2]float64{45000, 70000}}},
	{[]string{"microwave"}, sizeRange{[2]float64{45, 60}, [2]float64{35, 45}, [2]float64{25, 35}, [2]float64{10000, 20000}}},
	{[]string{"air conditioner", "portable ac"}, sizeRange{[2]float64{45, 65}, [2]float64{35, 50}, [2]float64{70, 85}, [2]float64{20000, 35000}}},
	{[]string{"vacuum cleaner", "robot vacuum"}, sizeRange{[2]float64{30, 45}, [2]float64{30, 45}, [2]float64{15, 30}, [2]float64{3000, 8000}}},
	{[]string{"air fryer", "slow cooker", "pressure cooker", "instant pot"}, sizeRange{[2]float64{30, 40}, [2]float64{30, 40}, [2]float64{30, 40}, [2]float64{4000, 8000}}},
	{[]string{"stand mixer", "food processor", "blender"}, sizeRange{[2]float64{25, 35}, [2]float64{25, 35}, [2]float64{30, 45}, [2]float64{3000, 7000}}},
	{[]string{"dehumidifier", "humidifier"}, sizeRange{[2]float64{30, 45}, [2]float64{20, 35}, [2]float64{45, 65}, [2]float64{8000, 15000}}},
}

var defaultLargeApplianceRange = sizeRange{[2]float64{60, 80}, [2]float64{60, 70}, [2]float64{80, 100}, [2]float64{30000, 60000}}

var furnitureRanges = []subRange{
	{[]string{"chair"}, sizeRange{[2]float64{50, 70}, [2]float64{50, 70}, [2]float64{80, 100}, [2]float64{5000, 15000}}},
	{[]string{"table", "desk"}, sizeRange{[2]float64{100, 180}, [2]float64{60, 90}, [2]float64{70, 80}, [2]float64{15000, 40000}}},
	{[]string{"sofa", "couch"}, sizeRange{[2]float64{180, 250}, [2]float64{80, 100}, [2]float64{80, 100}, [2]float64{40000, 80000}}},
	{[]string{"bed", "mattress"}, sizeRange{[2]float64{190, 210}, [2]float64{90, 180}, [2]float64{20, 50}, [2]float64{20000, 50000}}},
}

var defaultFurnitureRange = sizeRange{[2]float64{80, 120}, [2]float64{40, 60}, [2]float64{100, 180}, [2]float64{20000, 40000}}

var electronicsRanges = []subRange{
	{[]string{"laptop"}, sizeRange{[2]float64{30, 40}, [2]float64{20, 30}, [2]float64{1.5, 3}, [2]float64{1200, 2500}}},
	{[]string{"phone", "smartphone"}, sizeRange{[2]float64{14, 17}, [2]float64{6, 8}, [2]float64{0.7, 1}, [2]float64{150, 250}}},
	{[]string{"tablet"}, sizeRange{[2]float64{20, 30}, [2]float64{15, 20}, [2]float64{0.6, 1}, [2]float64{400, 800}}},
	{[]string{"headphones"}, sizeRange{[2]float64{15, 20}, [2]float64{15, 20}, [2]float64{5, 10}, [2]float64{200, 400}}},
}

var defaultElectronicsRange = sizeRange{[2]float64{15, 30}, [2]float64{10, 20}, [2]float64{5, 15}, [2]float64{500, 2000}}

var bookRange = sizeRange{[2]float64{15, 25}, [2]float64{10, 20}, [2]float64{1, 5}, [2]float64{200, 1000}}

var clothingRanges = []subRange{
	{[]string{"shoes", "boots"}, sizeRange{[2]float64{25, 35}, [2]float64{15, 25}, [2]float64{10, 15}, [2]float64{700, 1500}}},
}

var defaultClothingRange = sizeRange{[2]float64{20, 40}, [2]float64{15, 30}, [2]float64{2, 10}, [2]float64{200, 800}}

var toyRange = sizeRange{[2]float64{20, 40}, [2]float64{15, 30}, [2]float64{5, 20}, [2]float64{300, 2000}}

var beautyRange = sizeRange{[2]float64{5, 15}, [2]float64{5, 10}, [2]float64{10, 20}, [2]float64{100, 500}}

var foodRange = sizeRange{[2]float64{10, 30}, [2]float64{5, 20}, [2]float64{5, 30}, [2]float64{200, 2000}}

var fallbackRange = sizeRange{[2]float64{15, 30}, [2]float64{10, 20}, [2]float64{5, 15}, [2]float64{300, 1500}}

// drawRefined samples from the first sub-range whose keywords match the
// title, falling back to the category default band.
func drawRefined(rng *rand.Rand, title string, subs []subRange, fallback sizeRange) (domain.Dimensions, float64) {
	for _, sub := range subs {
		if containsAny(title, sub.keywords) {
			return drawSize(rng, sub.band)
		}
	}
	return drawSize(rng, fallback)
}

// detectProductCategory classifies a product and samples plausible dimensions
// and weight from category-specific bands. The title and description must
// already be lowercased; keyword membership is tested against the title only.
// Categories are checked in a fixed priority order and the first match wins.
func detectProductCategory(rng *rand.Rand, title, description string) (domain.CategoryTag, domain.Dimensions, float64) {
	_ = description // reserved for future refinements; classification reads the title

	switch {
	case containsAny(title, largeApplianceKeywords):
		dims, weight := drawRefined(rng, title, largeApplianceRanges, defaultLargeApplianceRange)
		return domain.CategoryLargeAppliance, dims, weight

	case containsAny(title, tvKeywords):
		dims, weight := tvDimensions(rng, title)
		return domain.CategoryTV, dims, weight

	case containsAny(title, furnitureKeywords):
		dims, weight := drawRefined(rng, title, furnitureRanges, defaultFurnitureRange)
		return domain.CategoryFurniture, dims, weight

	case containsAny(title, electronicsKeywords):
		dims, weight := drawRefined(rng, title, electronicsRanges, defaultElectronicsRange)
		return domain.CategoryElectronics, dims, weight

	case containsAny(title, bookKeywords):
		dims, weight := drawSize(rng, bookRange)
		return domain.CategoryBooks, dims, weight

	case containsAny(title, clothingKeywords):
		dims, weight := drawRefined(rng, title, clothingRanges, defaultClothingRange)
		return domain.CategoryClothing, dims, weight

	case containsAny(title, toyKeywords):
		dims, weight := drawSize(rng, toyRange)
		return domain.CategoryToys, dims, weight

	case containsAny(title, beautyKeywords):
		dims, weight := drawSize(rng, beautyRange)
		return domain.CategoryBeauty, dims, weight

	case containsAny(title, foodKeywords):
		dims, weight := drawSize(rng, foodRange)
		return domain.CategoryFood, dims, weight

	default:
		dims, weight := drawSize(rng, fallbackRange)
		if weight < 500 {
			return domain.CategorySmallItems, dims, weight
		}
		return domain.CategoryUnknown, dims, weight
	}
}

// tvDimensions derives TV dimensions from the diagonal size token in the
// title, assuming a 16:9 panel (width 87% of diagonal, height 49%). A title
// without a parseable size falls back to a typical 43" set.
func tvDimensions(rng *rand.Rand, title string) (domain.Dimensions, float64) {
	m := tvSizeRegex.FindStringSubmatch(title)
	if m == nil {
		return domain.Dimensions{LengthCM: 97, WidthCM: 8, HeightCM: 57}, 10000
	}

	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	size, err := strconv.Atoi(digits)
	if err != nil {
		return domain.Dimensions{LengthCM: 97, WidthCM: 8, HeightCM: 57}, 10000
	}

	diagonal := float64(size)
	width := diagonal * 0.87
	height := diagonal * 0.49
	depth := uniform(rng, 2, 8)

	dims := domain.Dimensions{
		LengthCM: width * 2.54,
		WidthCM:  depth,
		HeightCM: height * 2.54,
	}
	return dims, diagonal * 300 // rough estimate: 300g per diagonal inch
}
