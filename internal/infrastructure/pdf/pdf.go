// Package pdf implementa los motores que convierten una factura renderizada en PDF.
//
//   - ChromeRenderer: HTML/CSS → PDF con Chromium headless (go-rod).
//   - MarotoRenderer: layout nativo con Maroto v2 a partir de la vista de la factura.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jhoicas/invoice-pdf-api/internal/domain"
)

// Motores disponibles (PDF_ENGINE).
const (
	EngineChrome = "chrome"
	EngineMaroto = "maroto"
)

var pdfSignature = []byte("%PDF-")

// checkPDF rechaza salidas vacías o que no empiezan con la firma %PDF-.
func checkPDF(engine string, b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s devolvió un documento vacío", domain.ErrRendering, engine)
	}
	if !bytes.HasPrefix(b, pdfSignature) {
		return nil, fmt.Errorf("%w: %s devolvió un documento sin firma PDF", domain.ErrRendering, engine)
	}
	return b, nil
}
