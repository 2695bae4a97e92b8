package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStmt struct {
	SQL  string
	Vars []interface{}
}

// newDryRunDB opens a postgres-dialect gorm handle that builds SQL without
// touching a server. The registered callbacks capture every generated
// statement so tests can assert on the SQL and its bind variables.
func newDryRunDB(t *testing.T, captured *[]capturedStmt) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	capture := func(tx *gorm.DB) {
		*captured = append(*captured, capturedStmt{
			SQL:  tx.Statement.SQL.String(),
			Vars: tx.Statement.Vars,
		})
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("capture_create_sql", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_query_sql", capture))

	return db
}
