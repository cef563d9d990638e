package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// brokenRows iterates zero rows and reports failErr on Err, the shape a
// dropped connection takes mid-read.
type brokenRows struct {
	failErr error
}

func (r *brokenRows) Close()                                       {}
func (r *brokenRows) Err() error                                   { return r.failErr }
func (r *brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *brokenRows) Next() bool                                   { return false }
func (r *brokenRows) Scan(dest ...any) error                       { return nil }
func (r *brokenRows) Values() ([]any, error)                       { return nil, r.failErr }
func (r *brokenRows) RawValues() [][]byte                          { return nil }
func (r *brokenRows) Conn() *pgx.Conn                              { return nil }

type brokenDB struct {
	failErr error
}

func (d *brokenDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return &brokenRows{failErr: d.failErr}, nil
}

func TestLoadSurfacesIterationError(t *testing.T) {
	boom := errors.New("connection reset")
	cat, err := Load(context.Background(), &brokenDB{failErr: boom})
	if err == nil {
		t.Fatal("Load returned a catalog despite a failed row iteration")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("Load error = %v; want it to wrap the iteration error", err)
	}
	if cat != nil {
		t.Fatalf("Load = %v; want nil catalog on error", cat)
	}
}
