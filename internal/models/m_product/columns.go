package m_product

import "github.com/light-bringer/catalog-service/internal/models/m_inventory"

// SelectColumns returns the projection shared by every catalog read, in Data field order.
func SelectColumns() []string {
	return []string{
		Col(ID),
		Col(SKU),
		Col(Title),
		Col(Description),
		Col(Price),
		Col(ImageURL),
		Col(Tags),
		m_inventory.Col(m_inventory.Available) + " AS " + Stock,
		Col(UpdatedAt),
	}
}

// InventoryJoin returns the table and ON clause joining optional inventory rows.
func InventoryJoin() (table, on string) {
	return m_inventory.TableName + " " + m_inventory.Alias,
		m_inventory.Col(m_inventory.ProductID) + " = " + Col(ID)
}
