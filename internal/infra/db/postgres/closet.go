package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"fashionai/go_backend/internal/domain/closet"
)

// Schema:
//
//	CREATE TABLE collections (
//	    id      uuid PRIMARY KEY,
//	    user_id text NOT NULL,
//	    kind    text NOT NULL,
//	    name    text NOT NULL,
//	    UNIQUE (user_id, kind, name)
//	);
//	CREATE TABLE saved_products (
//	    collection_id uuid NOT NULL REFERENCES collections (id),
//	    product_id    text NOT NULL,
//	    data          jsonb NOT NULL,
//	    PRIMARY KEY (collection_id, product_id)
//	);

// FindOrCreateCollection returns the user's collection with the given name,
// creating it when absent. The upsert keeps the lookup race-safe when two
// saves name a new collection at the same time.
func (db *DB) FindOrCreateCollection(ctx context.Context, userID string, kind closet.Kind, name string) (closet.Collection, error) {
	col := closet.Collection{UserID: userID, Kind: kind, Name: name}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO collections (id, user_id, kind, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, kind, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		uuid.NewString(), userID, string(kind), name,
	).Scan(&col.ID)
	if err != nil {
		return closet.Collection{}, fmt.Errorf("find or create collection: %w", err)
	}
	return col, nil
}

// UpsertSavedProduct writes a product record under a collection. A second
// save with the same ID merges the new fields over the stored record.
func (db *DB) UpsertSavedProduct(ctx context.Context, collectionID string, p closet.SavedProduct) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO saved_products (collection_id, product_id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection_id, product_id)
		DO UPDATE SET data = saved_products.data || EXCLUDED.data`,
		collectionID, p.ID, data,
	)
	if err != nil {
		return fmt.Errorf("upsert saved product: %w", err)
	}
	return nil
}

func (db *DB) DeleteSavedProduct(ctx context.Context, userID, collectionID, productID string) error {
	tag, err := db.Pool.Exec(ctx, `
		DELETE FROM saved_products sp
		USING collections c
		WHERE sp.collection_id = c.id
		  AND c.user_id = $1
		  AND sp.collection_id = $2
		  AND sp.product_id = $3`,
		userID, collectionID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete saved product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) ListCollections(ctx context.Context, userID string, kind closet.Kind) ([]closet.Collection, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name FROM collections
		WHERE user_id = $1 AND kind = $2
		ORDER BY name ASC`,
		userID, string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var out []closet.Collection
	for rows.Next() {
		col := closet.Collection{UserID: userID, Kind: kind, Products: []closet.SavedProduct{}}
		if err := rows.Scan(&col.ID, &col.Name); err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		products, err := db.listSavedProducts(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Products = products
	}
	return out, nil
}

func (db *DB) GetCollection(ctx context.Context, userID, collectionID string, kind closet.Kind) (closet.Collection, error) {
	col := closet.Collection{ID: collectionID, UserID: userID, Kind: kind}
	err := db.Pool.QueryRow(ctx, `
		SELECT name FROM collections
		WHERE id = $1 AND user_id = $2 AND kind = $3`,
		collectionID, userID, string(kind),
	).Scan(&col.Name)
	if err != nil {
		return closet.Collection{}, ErrNotFound
	}

	products, err := db.listSavedProducts(ctx, collectionID)
	if err != nil {
		return closet.Collection{}, err
	}
	col.Products = products
	return col, nil
}

func (db *DB) listSavedProducts(ctx context.Context, collectionID string) ([]closet.SavedProduct, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT data FROM saved_products
		WHERE collection_id = $1
		ORDER BY product_id ASC`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved products: %w", err)
	}
	defer rows.Close()

	out := []closet.SavedProduct{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var p closet.SavedProduct
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
