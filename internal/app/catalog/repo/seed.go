package repo

import "github.com/light-bringer/catalog-service/internal/app/catalog/domain"

// SeedCatalog returns the demo catalog served by memory:// targets.
func SeedCatalog() []*domain.Product {
	return []*domain.Product{
		seedProduct("p-100", "SKU-100", "Wireless Mouse", domain.MustPrice(1999), 120, "peripheral", "mouse"),
		seedProduct("p-101", "SKU-101", "Mechanical Keyboard", domain.MustPrice(5900), 50, "peripheral", "keyboard"),
		seedProduct("p-102", "SKU-102", "USB-C Cable", domain.MustPrice(750), 500, "cable", "usb-c"),
		seedProduct("p-103", "SKU-103", `27" Monitor`, domain.MustPrice(19900), 20, "monitor", "display"),
	}
}

func seedProduct(id, sku, title string, price domain.Price, stock int64, tags ...string) *domain.Product {
	return &domain.Product{
		ID:    id,
		SKU:   sku,
		Title: title,
		Price: price,
		Tags:  tags,
		Stock: &stock,
	}
}
