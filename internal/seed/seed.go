// Package seed loads the initial item catalogue from a gzipped JSON-lines
// file, read from the local file system or from S3, and inserts any items
// the database does not yet hold.
package seed

import "context"

// ItemRecord is one line of a seed file. The id is creator-assigned so that
// repeated seeding of the same file is idempotent.
type ItemRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Loader reads item records from a seed source. The meaning of source
// depends on the implementation: a file path or an S3 object key.
type Loader interface {
	Load(ctx context.Context, source string) ([]ItemRecord, error)
}
