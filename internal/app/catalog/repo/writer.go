package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_inventory"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

const (
	upsertProductSQL = `INSERT INTO products (id, sku, title, description, price, image_url, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    sku = EXCLUDED.sku,
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    image_url = EXCLUDED.image_url,
    tags = EXCLUDED.tags,
    updated_at = now()`

	upsertInventorySQL = `INSERT INTO inventory (product_id, available)
VALUES ($1, $2)
ON CONFLICT (product_id) DO UPDATE SET
    available = EXCLUDED.available,
    updated_at = now()`

	deleteInventorySQL = `DELETE FROM inventory WHERE product_id = $1`
)

// ProductMutations returns the Spanner mutations that store p and its inventory row.
// A nil Stock removes any inventory row so stock becomes untracked.
func ProductMutations(p *domain.Product) []*spanner.Mutation {
	muts := []*spanner.Mutation{
		spanner.InsertOrUpdateMap(m_product.TableName, map[string]interface{}{
			m_product.ID:          p.ID,
			m_product.SKU:         p.SKU,
			m_product.Title:       p.Title,
			m_product.Description: p.Description,
			m_product.Price:       p.Price.Rat(),
			m_product.ImageURL:    p.ImageURL,
			m_product.Tags:        tagsOrEmpty(p.Tags),
			m_product.CreatedAt:   spanner.CommitTimestamp,
			m_product.UpdatedAt:   spanner.CommitTimestamp,
		}),
	}

	if p.Stock == nil {
		return append(muts, spanner.Delete(m_inventory.TableName, spanner.Key{p.ID}))
	}
	return append(muts, spanner.InsertOrUpdateMap(m_inventory.TableName, map[string]interface{}{
		m_inventory.ProductID: p.ID,
		m_inventory.Available: *p.Stock,
		m_inventory.UpdatedAt: spanner.CommitTimestamp,
	}))
}

// WriteSpanner upserts products in a single commit.
func WriteSpanner(ctx context.Context, c *committer.Committer, products ...*domain.Product) error {
	plan := committer.NewPlan()
	for _, p := range products {
		plan.AddMultiple(ProductMutations(p))
	}
	if err := c.Apply(ctx, plan); err != nil {
		return storeError("write products", err)
	}
	return nil
}

// WritePostgres upserts products in one transaction on one connection.
func WritePostgres(ctx context.Context, pool *database.Pool, products ...*domain.Product) error {
	err := pool.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, p := range products {
			if _, err := tx.ExecContext(ctx, upsertProductSQL,
				p.ID, p.SKU, p.Title, p.Description, p.Price, p.ImageURL, pq.Array(tagsOrEmpty(p.Tags)),
			); err != nil {
				return fmt.Errorf("upsert product %s: %w", p.ID, err)
			}

			if p.Stock == nil {
				_, err = tx.ExecContext(ctx, deleteInventorySQL, p.ID)
			} else {
				_, err = tx.ExecContext(ctx, upsertInventorySQL, p.ID, *p.Stock)
			}
			if err != nil {
				return fmt.Errorf("write inventory %s: %w", p.ID, err)
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return storeError("write products", err)
	}
	return nil
}
