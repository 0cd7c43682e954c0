package entity

import "strings"

// Product is a document in the products collection.
//
// The id is the normalized name for records created by this service; legacy
// records may carry an arbitrary id, which is preserved across edits. Name is
// always stored in normalized form so that lookups and writes agree on the
// key for the same logical product.
type Product struct {
	ID       string  `bson:"_id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// NormalizeName trims surrounding whitespace and lower-cases a product name.
// Every lookup and every write must pass names through here, otherwise two
// spellings of the same product would land in separate documents.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
