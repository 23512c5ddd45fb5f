package m_inventory

// Field name constants for the inventory table.
// A product without a row here has no tracked stock.
const (
	TableName = "inventory"
	Alias     = "i"

	ProductID = "product_id"
	Available = "available"
	UpdatedAt = "updated_at"
)

// Col qualifies an inventory column with the query alias.
func Col(field string) string {
	return Alias + "." + field
}
