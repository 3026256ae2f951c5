package sqlframe_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jeffamaxey/framecheck/pkg/adapters/sqlframe"
	"github.com/jeffamaxey/framecheck/pkg/schema"
	"github.com/jeffamaxey/framecheck/pkg/schema/frametest"
)

func TestFrame_Contract(t *testing.T) {
	db := openDB(t)

	rows, err := db.Query(`SELECT brand, price FROM products`)
	require.NoError(t, err)
	defer rows.Close()

	f, err := sqlframe.FromRows(rows)
	require.NoError(t, err)

	frametest.Run(t, frametest.Target{
		Frame:   f,
		Columns: []string{"brand", "price"},
		Dtypes:  map[string]string{"brand": schema.TypeObject, "price": schema.TypeInt},
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE products (
		brand TEXT,
		price INTEGER,
		rating REAL,
		in_stock BOOLEAN
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO products VALUES ('Ford', 22000, 4.5, 1)`)
	require.NoError(t, err)
	return db
}

func TestFromRows(t *testing.T) {
	db := openDB(t)

	rows, err := db.Query(`SELECT brand, price, rating, in_stock FROM products`)
	require.NoError(t, err)
	defer rows.Close()

	f, err := sqlframe.FromRows(rows)
	require.NoError(t, err)

	require.Equal(t, []string{"brand", "price", "rating", "in_stock"}, f.ColumnNames())
	require.Equal(t, schema.TypeObject, f.ColumnType("brand"))
	require.Equal(t, schema.TypeInt, f.ColumnType("price"))
	require.Equal(t, schema.TypeFloat, f.ColumnType("rating"))
	require.Equal(t, schema.TypeBool, f.ColumnType("in_stock"))
	require.Equal(t, "INTEGER", f.DatabaseType("price"))

	// The result set is still consumable after the schema capture.
	require.True(t, rows.Next())
}

func TestFromRows_Validate(t *testing.T) {
	db := openDB(t)

	rows, err := db.Query(`SELECT brand, price FROM products`)
	require.NoError(t, err)
	defer rows.Close()

	f, err := sqlframe.FromRows(rows)
	require.NoError(t, err)

	require.NoError(t, schema.Validate(f, schema.Contract{
		Fields: []schema.Field{
			{Name: "brand"},
			{Name: "price", Type: schema.TypeInt},
		},
		Strict: true,
	}))

	err = schema.Validate(f, schema.Contract{
		Fields: []schema.Field{{Name: "price", Type: schema.TypeFloat}},
	})
	require.EqualError(t, err, "Column price has wrong dtype. Was int64, expected float64")
}

func TestDtypeTagFolding(t *testing.T) {
	db := openDB(t)

	// Expression columns carry no declared type in sqlite.
	rows, err := db.Query(`SELECT price + 1 AS bumped FROM products`)
	require.NoError(t, err)
	defer rows.Close()

	f, err := sqlframe.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, schema.TypeObject, f.ColumnType("bumped"))
}
