// Package storage guarda los PDF generados en el directorio de salida.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
)

var _ billing.OutputStore = (*OutputDir)(nil)

// OutputDir directorio de salida sobre un afero.Fs (disco en producción, memoria en tests).
type OutputDir struct {
	fs  afero.Fs
	dir string
}

// NewOutputDir construye el almacén. El directorio se crea en la primera escritura.
func NewOutputDir(fsys afero.Fs, dir string) *OutputDir {
	return &OutputDir{fs: fsys, dir: dir}
}

// Dir ruta del directorio de salida.
func (o *OutputDir) Dir() string { return o.dir }

// Write crea fileName con data. Falla si el archivo ya existe (O_EXCL): nunca sobrescribe.
func (o *OutputDir) Write(_ context.Context, fileName string, data []byte) (string, error) {
	if !validFileName(fileName) {
		return "", fmt.Errorf("%w: nombre de archivo %q", domain.ErrInvalidInput, fileName)
	}
	if err := o.fs.MkdirAll(o.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: crear directorio %s: %v", domain.ErrIO, o.dir, err)
	}
	path := filepath.Join(o.dir, fileName)
	f, err := o.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: crear %s: %v", domain.ErrIO, path, err)
	}
	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = o.fs.Remove(path)
		return "", fmt.Errorf("%w: escribir %s: %v", domain.ErrIO, path, err)
	}
	return path, nil
}

// Read devuelve el contenido de fileName. domain.ErrNotFound si no existe o el nombre no es válido.
func (o *OutputDir) Read(_ context.Context, fileName string) ([]byte, error) {
	if !validFileName(fileName) {
		return nil, fmt.Errorf("%w: archivo %q", domain.ErrNotFound, fileName)
	}
	data, err := afero.ReadFile(o.fs, filepath.Join(o.dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: archivo %q", domain.ErrNotFound, fileName)
		}
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrIO, fileName, err)
	}
	return data, nil
}

// validFileName solo admite nombres planos *.pdf, sin separadores ni rutas relativas.
func validFileName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}
