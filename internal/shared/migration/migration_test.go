package migration_test

import (
	"testing"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/migration"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"postgres scheme", "postgres://u:p@db:5432/wc?sslmode=disable", "pgx5://u:p@db:5432/wc?sslmode=disable"},
		{"postgresql scheme", "postgresql://u:p@db/wc", "pgx5://u:p@db/wc"},
		{"already pgx5", "pgx5://u:p@db/wc", "pgx5://u:p@db/wc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.DatabaseURL(tt.in))
		})
	}
}
