//go:build integration
// +build integration

package testinfra

import (
	"context"
	_ "embed"
	"testing"

	"PagSeguroBridge/pkg/postgres"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/store_fixture.sql
var storeFixture string

// ApplyStoreFixture seeds the catalog and orders 1001..1007 of store 1 (1005 belongs to store 2).
func ApplyStoreFixture(t *testing.T, tx postgres.Executor) {
	t.Helper()
	_, err := tx.Exec(context.Background(), storeFixture)
	require.NoError(t, err)
}
