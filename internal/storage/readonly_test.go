package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckReadOnly(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		ok   bool
	}{
		{"plain select", "SELECT * FROM expenses", true},
		{"lower case", "select Category from expenses", true},
		{"trailing semicolon", "SELECT 1;", true},
		{"leading comment", "-- totals\nSELECT 1", true},
		{"block comment", "/* hi */ SELECT 1", true},
		{"parenthesised", "(SELECT 1)", true},
		{"cte", "WITH t AS (SELECT 1) SELECT * FROM t", true},
		{"semicolon in literal", "SELECT * FROM expenses WHERE Description = 'a;b'", true},
		{"escaped quote", "SELECT 'it''s; fine'", true},
		{"empty", "   ", false},
		{"only comment", "-- nothing", false},
		{"drop", "DROP TABLE expenses", false},
		{"stacked", "SELECT 1; DELETE FROM expenses", false},
		{"comment hides keyword", "/* SELECT */ DELETE FROM expenses", false},
		{"pragma", "PRAGMA table_info(expenses)", false},
		{"insert", "insert into expenses values (1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckReadOnly(tt.sql)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
