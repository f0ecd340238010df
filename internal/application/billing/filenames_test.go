package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestFileName(t *testing.T) {
	a, b := requestFileName(), requestFileName()
	assert.Regexp(t, `^invoice_[0-9a-f-]{36}\.pdf$`, a)
	assert.NotEqual(t, a, b)
}

func TestDatabaseFileName(t *testing.T) {
	now := time.UnixMilli(1705312800000)

	cases := map[string]string{
		"INV-001":       `^invoice_db_INV-001_1705312800000_[0-9a-f]{8}\.pdf$`,
		"../../etc/pwd": `^invoice_db_etc-pwd_1705312800000_[0-9a-f]{8}\.pdf$`,
		"FAC 2024/01":   `^invoice_db_FAC-2024-01_1705312800000_[0-9a-f]{8}\.pdf$`,
		"":              `^invoice_db_sin-codigo_1705312800000_[0-9a-f]{8}\.pdf$`,
	}
	for code, pattern := range cases {
		assert.Regexp(t, pattern, databaseFileName(code, now), code)
	}
	assert.NotEqual(t, databaseFileName("INV-001", now), databaseFileName("INV-001", now))
}
