package catalog

import "github.com/novashop/novashop-backend/internal/app/model"

// DefaultProducts is the fixed NovaShop assortment. The catalog is defined at
// process start and never mutated afterwards.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Luxe Draadloze Koptelefoon",
			Price:       299.00,
			Description: "Premium geluidskwaliteit met actieve ruisonderdrukking. Perfect voor werk en ontspanning.",
			Category:    model.CategoryTech,
			Image:       "https://picsum.photos/seed/headphones/600/600",
			Rating:      4.8,
		},
		{
			ID:          2,
			Name:        "Minimalistische Rugzak",
			Price:       89.95,
			Description: "Een stijlvolle, waterbestendige rugzak met een speciaal vak voor je 15-inch laptop.",
			Category:    model.CategoryFashion,
			Image:       "https://picsum.photos/seed/backpack/600/600",
			Rating:      4.5,
		},
		{
			ID:          3,
			Name:        "Slimme Wandlamp",
			Price:       124.50,
			Description: "Moderne verlichting die je kunt bedienen met je smartphone. Warm wit tot koel daglicht.",
			Category:    model.CategoryHome,
			Image:       "https://picsum.photos/seed/lamp/600/600",
			Rating:      4.7,
		},
		{
			ID:          4,
			Name:        "Mechanisch Toetsenbord",
			Price:       159.00,
			Description: "Compact mechanisch toetsenbord met RGB-verlichting en aanpasbare switches.",
			Category:    model.CategoryTech,
			Image:       "https://picsum.photos/seed/keyboard/600/600",
			Rating:      4.9,
		},
		{
			ID:          5,
			Name:        "Leren Kaarthouder",
			Price:       45.00,
			Description: "Handgemaakte leren kaarthouder voor de minimalistische reiziger.",
			Category:    model.CategoryFashion,
			Image:       "https://picsum.photos/seed/wallet/600/600",
			Rating:      4.6,
		},
		{
			ID:          6,
			Name:        "Espressomachine",
			Price:       549.00,
			Description: "Breng de barista-ervaring naar huis met deze compacte maar krachtige machine.",
			Category:    model.CategoryHome,
			Image:       "https://picsum.photos/seed/coffee/600/600",
			Rating:      4.9,
		},
		{
			ID:          7,
			Name:        "Draadloze Speaker",
			Price:       199.00,
			Description: "Krachtig 360-graden geluid in een compact, draagbaar jasje.",
			Category:    model.CategoryTech,
			Image:       "https://picsum.photos/seed/speaker/600/600",
			Rating:      4.4,
		},
		{
			ID:          8,
			Name:        "Wollen Sjaal",
			Price:       65.00,
			Description: "Zachte, warme sjaal van 100% duurzame merinowol.",
			Category:    model.CategoryFashion,
			Image:       "https://picsum.photos/seed/scarf/600/600",
			Rating:      4.7,
		},
	}
}
