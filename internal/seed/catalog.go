package seed

import (
	"math/rand"

	"gorm.io/gorm"

	"github.com/example/wardrobe/internal/models"
)

// seedCatalog builds and persists the full demo catalog. Category size sets
// are written before the products whose stock rows reference those sizes.
func seedCatalog(tx *gorm.DB, policy StockPolicy, rng *rand.Rand) error {
	white := newColor("White", "#FFFFFF")
	black := newColor("Black", "#000000")
	red := newColor("Red", "#FF0000")
	green := newColor("Green", "#008000")
	blue := newColor("Blue", "#0000FF")
	yellow := newColor("Yellow", "#FFFF00")
	cyan := newColor("Cyan", "#00FFFF")
	silver := newColor("Silver", "#C0C0C0")
	purple := newColor("Purple", "#800080")
	orange := newColor("Orange", "#FFA500")
	violet := newColor("Violet", "#EE82EE")
	brown := newColor("Brown", "#A52A2A")
	khaki := newColor("Khaki", "#F0E68C")

	colors := []models.Color{white, black, red, green, blue, yellow, cyan, silver, purple, orange, violet, brown, khaki}
	for _, color := range colors {
		if err := color.Validate(); err != nil {
			return err
		}
	}
	if err := tx.Create(&colors).Error; err != nil {
		return err
	}

	casual := newOccasion("Casual", "Outfits for casual occasions")
	formal := newOccasion("Formal", "Outfits for formal occasions")
	sporty := newOccasion("Sporty", "Outfits for sporty occasions")
	business := newOccasion("Business", "Outfits for business occasions")
	street := newOccasion("Street", "Outfits for street occasions")

	occasions := []models.Occasion{casual, formal, sporty, business, street}
	if err := tx.Create(&occasions).Error; err != nil {
		return err
	}

	shirts := newCategory("Shirts", nil)
	shoes := newCategory("Shoes", nil)
	pants := newCategory("Pants", nil)
	accessories := newCategory("Accessories", nil)

	rootCategories := []models.Category{shirts, shoes, pants, accessories}
	if err := tx.Create(&rootCategories).Error; err != nil {
		return err
	}

	poloShirts := newCategory("Polo Shirt", &shirts)
	tShirts := newCategory("T-Shirts", &shirts)
	blouses := newCategory("Blouse", &shirts)
	runningShoes := newCategory("Running Shoes", &shoes)
	casualShoes := newCategory("Casual Shoes", &shoes)
	chinos := newCategory("Chinos", &pants)
	belts := newCategory("Belts", &accessories)

	subCategories := []models.Category{poloShirts, tShirts, blouses, runningShoes, casualShoes, chinos, belts}
	if err := tx.Create(&subCategories).Error; err != nil {
		return err
	}

	cotton := newMaterial("Cotton")
	leather := newMaterial("Leather")
	polyester := newMaterial("Polyester")
	silk := newMaterial("Silk")
	wool := newMaterial("Wool")
	rubber := newMaterial("Rubber")
	suede := newMaterial("Suede")

	materials := []models.Material{cotton, leather, polyester, silk, wool, rubber, suede}
	if err := tx.Create(&materials).Error; err != nil {
		return err
	}

	// Each category tree gets its own size rows, even where display names
	// repeat across trees.
	shirtSizes := NewSizes([]SizeSpec{
		{"XS", -6}, {"S", -5}, {"M", -4}, {"L", -3}, {"XL", -2}, {"XXL", -1},
	})
	shoeSizes := NewSizes([]SizeSpec{
		{"36", 36}, {"37", 37}, {"38", 38}, {"39", 39}, {"40", 40}, {"41", 41},
		{"42", 42}, {"43", 43}, {"44", 44}, {"45", 45}, {"46", 46}, {"47", 47},
	})
	pantSizes := NewSizes([]SizeSpec{
		{"XS", 28}, {"S", 30}, {"M", 32}, {"L", 34}, {"XL", 36}, {"XXL", 38},
	})
	accessorySizes := NewSizes([]SizeSpec{
		{"XS", 28}, {"S", 30}, {"M", 32}, {"L", 34}, {"XL", 36}, {"XXL", 38},
	})

	for _, sizes := range [][]models.Size{shirtSizes, shoeSizes, pantSizes, accessorySizes} {
		batch := sizes
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
	}

	categorySizes := BuildCategorySizes([]models.Category{shirts, tShirts, poloShirts, blouses}, shirtSizes)
	categorySizes = append(categorySizes, BuildCategorySizes([]models.Category{shoes, runningShoes, casualShoes}, shoeSizes)...)
	categorySizes = append(categorySizes, BuildCategorySizes([]models.Category{pants, chinos}, pantSizes)...)
	categorySizes = append(categorySizes, BuildCategorySizes([]models.Category{accessories, belts}, accessorySizes)...)
	if err := tx.Create(&categorySizes).Error; err != nil {
		return err
	}

	casualShirt := newProduct("Men's Casual Shirt", "A comfortable and stylish shirt for everyday wear.", cotton, models.GenderUnisex, casual, models.SeasonSummer, 2021)
	addImages(&casualShirt, white, []string{"https://i.pinimg.com/564x/1b/7c/b6/1b7cb6fe341e990867f7f29d8fc44773.jpg"})
	addMaterial(&casualShirt, cotton, 0.9)
	addMaterial(&casualShirt, polyester, 0.1)
	addCategories(&casualShirt, shirts, tShirts)
	if err := addStocks(&casualShirt, []models.Color{white, black}, shirtSizes, 30, policy, rng); err != nil {
		return err
	}

	blouse := newProduct("Women's Blouse", "Casual blouse for casual occasions.", silk, models.GenderFemale, formal, models.SeasonSummer, 2021)
	addImages(&blouse, white, []string{"https://i.pinimg.com/564x/f5/58/9d/f5589d631ab3686d469ec93ac23ebc9f.jpg"})
	addImages(&blouse, black, []string{"https://i.pinimg.com/564x/82/2a/ac/822aac770bc03449bfb85a7d63e276d4.jpg"})
	addMaterial(&blouse, silk, 0.9)
	addMaterial(&blouse, wool, 0.1)
	addCategories(&blouse, shirts, blouses)
	if err := addStocks(&blouse, []models.Color{black, white}, shirtSizes, 40, policy, rng); err != nil {
		return err
	}

	poloShirt := newProduct("Men's Striped Polo Shirt", "Casual polo shirt with stripes for a sporty look.", cotton, models.GenderMale, casual, models.SeasonSummer, 2021)
	addImages(&poloShirt, black, []string{"https://i.pinimg.com/564x/70/da/dd/70dadd5f402821dcae83e7be32e29ce7.jpg"})
	addMaterial(&poloShirt, polyester, 0.5)
	addMaterial(&poloShirt, cotton, 0.5)
	addCategories(&poloShirt, shirts, poloShirts)
	if err := addStocks(&poloShirt, []models.Color{black}, shirtSizes, 25, policy, rng); err != nil {
		return err
	}

	runningShoe := newProduct("Men's Running Shoes", "Comfortable running shoes for active individuals.", polyester, models.GenderMale, sporty, models.SeasonDemiSeason, 2022)
	addImages(&runningShoe, black, []string{"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/61ZA59Q2OIL._AC_SY395_.jpg"})
	addImages(&runningShoe, white, []string{"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/51+49v7ksXL._AC_SY395_.jpg"})
	addMaterial(&runningShoe, rubber, 0.4)
	addMaterial(&runningShoe, polyester, 0.6)
	addCategories(&runningShoe, shoes, runningShoes)
	if err := addStocks(&runningShoe, []models.Color{black, white}, shoeSizes, 80, policy, rng); err != nil {
		return err
	}

	casualSneakers := newProduct("Unisex Casual Sneakers", "Comfortable and stylish casual sneakers for both men and women.", cotton, models.GenderUnisex, street, models.SeasonDemiSeason, 2022)
	addImages(&casualSneakers, violet, []string{"https://www.nike.org.ua/files/resized/products/85_1.700x800.png"})
	addImages(&casualSneakers, white, []string{"https://www.nike.org.ua/files/resized/products/84_1.700x800.png"})
	addImages(&casualSneakers, black, []string{"https://www.nike.org.ua/files/resized/products/80_1.700x800.png"})
	addMaterial(&casualSneakers, cotton, 0.8)
	addMaterial(&casualSneakers, rubber, 0.2)
	addCategories(&casualSneakers, shoes, casualShoes)
	if err := addStocks(&casualSneakers, []models.Color{violet, white, black}, shoeSizes, 90, policy, rng); err != nil {
		return err
	}

	womensSneakers := newProduct("Women's Casual Sneakers", "Stylish and comfortable casual sneakers for women.", cotton, models.GenderFemale, street, models.SeasonDemiSeason, 2022)
	addImages(&womensSneakers, black, []string{"https://images.puma.com/image/upload/f_auto,q_auto,b_rgb:fafafa/global/397549/01/sv01/fnd/UKR/w/1000/h/1000/fmt/png"})
	addMaterial(&womensSneakers, suede, 0.8)
	addMaterial(&womensSneakers, rubber, 0.2)
	addCategories(&womensSneakers, shoes, casualShoes)
	if err := addStocks(&womensSneakers, []models.Color{black}, shoeSizes, 140, policy, rng); err != nil {
		return err
	}

	casualPants := newProduct("Men's Casual Pants", "Comfortable and stylish pants for everyday wear.", cotton, models.GenderMale, casual, models.SeasonDemiSeason, 2022)
	casualPants.SizeChartImageURL = "https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/61q0QLQ1EFL._AC_SX342_.jpg"
	addImages(&casualPants, black, []string{
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/81uCZWI6cUL._AC_SY445_.jpg",
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/71UQKwNyieL._AC_SY445_.jpg",
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/71obafsgPfL._AC_SY445_.jpg",
	})
	addImages(&casualPants, khaki, []string{
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/81uoaWwCjuL._AC_SY445_.jpg",
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/81j44iOBYCL._AC_SY445_.jpg",
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/712wBPy9LkL._AC_SY445_.jpg",
	})
	addMaterial(&casualPants, wool, 1)
	addCategories(&casualPants, pants, chinos)
	if err := addStocks(&casualPants, []models.Color{black, khaki}, pantSizes, 50, policy, rng); err != nil {
		return err
	}

	leatherBelt := newProduct("Leather Belt", "Stylish leather belt for men and women.", leather, models.GenderUnisex, business, models.SeasonAll, 2022)
	addImages(&leatherBelt, brown, []string{
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/61u1DkV6u8L._AC_SX679_.jpg",
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/61nfdjkLWwL._AC_SX385_.jpg",
		"https://m.media-amazon.com/images/W/MEDIAX_792452-T1/images/I/61uBafwoEGL._AC_SX342_.jpg",
	})
	addMaterial(&leatherBelt, leather, 1)
	addCategories(&leatherBelt, accessories, belts)
	if err := addStocks(&leatherBelt, []models.Color{brown}, accessorySizes, 100, policy, rng); err != nil {
		return err
	}

	products := []models.Product{
		casualShirt, blouse, poloShirt,
		runningShoe, casualSneakers, womensSneakers,
		casualPants, leatherBelt,
	}
	for _, product := range products {
		if err := models.ValidateComposition(product.Materials); err != nil {
			return err
		}
	}

	return tx.Create(&products).Error
}
