//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), want: KindForeignKeyViolated},
		{name: "anything else", err: assert.AnError, want: KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("lookup", tt.err, tt.kind...)
			assert.True(t, IsKind(err, tt.want))
			assert.True(t, errors.Is(err, tt.err))
			assert.Contains(t, err.Error(), "lookup")
		})
	}

	assert.False(t, IsKind(assert.AnError, KindDBFailure))
}
