package catalog

import (
	"fmt"

	"techmart/internal/domain"
)

var brandColors = map[string]string{
	"HP":     "0073e6",
	"Dell":   "007DB8",
	"Lenovo": "E2231A",
}

func placeholderImage(brand string) string {
	return fmt.Sprintf("https://via.placeholder.com/300x200/%s/FFFFFF?text=%s+Laptop", brandColors[brand], brand)
}

// SampleProducts returns the built-in fallback catalog: ten laptops across
// HP, Dell and Lenovo used whenever the CSV file is absent or unreadable.
func SampleProducts() []domain.Product {
	products := []domain.Product{
		{
			ID: 1, Name: "HP Pavilion Gaming 15", Brand: "HP", Category: "Gaming Laptop",
			Price: 425000, Stock: 15,
			Specs: `Intel Core i5-11300H, 8GB RAM, 512GB SSD, NVIDIA GTX 1650, 15.6" FHD Display, Windows 11`,
		},
		{
			ID: 2, Name: "Dell Inspiron 15 3000", Brand: "Dell", Category: "Budget Laptop",
			Price: 365000, Stock: 25,
			Specs: `Intel Core i3-1115G4, 4GB RAM, 1TB HDD, Intel UHD Graphics, 15.6" HD Display, Windows 11`,
		},
		{
			ID: 3, Name: "Lenovo ThinkPad E14", Brand: "Lenovo", Category: "Business Laptop",
			Price: 520000, Stock: 12,
			Specs: `Intel Core i5-1135G7, 8GB RAM, 256GB SSD, Intel Iris Xe Graphics, 14" FHD Display, Windows 11 Pro`,
		},
		{
			ID: 4, Name: "HP EliteBook 840 G8", Brand: "HP", Category: "Business Laptop",
			Price: 685000, Stock: 8,
			Specs: `Intel Core i7-1165G7, 16GB RAM, 512GB SSD, Intel Iris Xe Graphics, 14" FHD Display, Windows 11 Pro`,
		},
		{
			ID: 5, Name: "Dell XPS 13 9310", Brand: "Dell", Category: "Ultrabook",
			Price: 735000, Stock: 6,
			Specs: `Intel Core i7-1165G7, 16GB RAM, 512GB SSD, Intel Iris Xe Graphics, 13.3" 4K OLED Display, Windows 11`,
		},
		{
			ID: 6, Name: "Lenovo Legion 5 15ACH6H", Brand: "Lenovo", Category: "Gaming Laptop",
			Price: 615000, Stock: 10,
			Specs: `AMD Ryzen 5 5600H, 8GB RAM, 512GB SSD, NVIDIA RTX 3060, 15.6" FHD 120Hz Display, Windows 11`,
		},
		{
			ID: 7, Name: "HP Spectre x360 14", Brand: "HP", Category: "2-in-1 Laptop",
			Price: 695000, Stock: 7,
			Specs: `Intel Core i7-1165G7, 16GB RAM, 1TB SSD, Intel Iris Xe Graphics, 13.5" 3K2K OLED Touchscreen, Windows 11`,
		},
		{
			ID: 8, Name: "Dell Latitude 5520", Brand: "Dell", Category: "Business Laptop",
			Price: 465000, Stock: 18,
			Specs: `Intel Core i5-1135G7, 8GB RAM, 256GB SSD, Intel Iris Xe Graphics, 15.6" FHD Display, Windows 11 Pro`,
		},
		{
			ID: 9, Name: "Lenovo IdeaPad 3 15ITL6", Brand: "Lenovo", Category: "Budget Laptop",
			Price: 385000, Stock: 22,
			Specs: `Intel Core i3-1115G4, 4GB RAM, 1TB HDD, Intel UHD Graphics, 15.6" HD Display, Windows 11`,
		},
		{
			ID: 10, Name: "HP Omen 15-en1013dx", Brand: "HP", Category: "Gaming Laptop",
			Price: 575000, Stock: 14,
			Specs: `AMD Ryzen 7 5800H, 8GB RAM, 512GB SSD, NVIDIA RTX 3060, 15.6" FHD 144Hz Display, Windows 11`,
		},
	}

	for i := range products {
		products[i].ImageURL = placeholderImage(products[i].Brand)
	}
	return products
}
