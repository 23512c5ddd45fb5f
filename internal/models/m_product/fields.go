package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"
	// Alias is the table alias used by catalog queries.
	Alias = "p"

	ID          = "id"
	SKU         = "sku"
	Title       = "title"
	Description = "description"
	Price       = "price"
	ImageURL    = "image_url"
	Tags        = "tags"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"

	// Stock is the result column carrying the joined inventory quantity.
	Stock = "stock"
)

// Col qualifies a products column with the query alias.
func Col(field string) string {
	return Alias + "." + field
}
