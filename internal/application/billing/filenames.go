package billing

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// requestFileName nombre para un PDF generado desde una petición: invoice_<uuid>.pdf
func requestFileName() string {
	return "invoice_" + uuid.NewString() + ".pdf"
}

// databaseFileName nombre para un PDF generado desde la base de datos:
// invoice_db_<código>_<unix ms>_<aleatorio>.pdf. El sufijo aleatorio evita colisiones
// entre peticiones concurrentes sobre la misma factura en el mismo milisegundo.
func databaseFileName(invoiceCode string, now time.Time) string {
	code := strings.Trim(unsafeFileChars.ReplaceAllString(invoiceCode, "-"), "-.")
	if code == "" {
		code = "sin-codigo"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("invoice_db_%s_%d_%s.pdf", code, now.UnixMilli(), suffix)
}
