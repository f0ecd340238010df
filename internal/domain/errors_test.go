package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-pdf-api/internal/domain"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.ErrNotFound, "not_found"},
		{fmt.Errorf("pdf: obtener factura: %w", domain.ErrNotFound), "not_found"},
		{fmt.Errorf("fecha: %w", domain.ErrInvalidInput), "validation"},
		{fmt.Errorf("%w: chrome", domain.ErrRendering), "rendering"},
		{domain.ErrUnsupportedSource, "rendering"},
		{fmt.Errorf("insert invoice: %w", domain.ErrStorage), "storage"},
		{fmt.Errorf("write: %w", domain.ErrIO), "io"},
		{errors.New("boom"), "internal"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.Kind(c.err), "error: %v", c.err)
	}
}
