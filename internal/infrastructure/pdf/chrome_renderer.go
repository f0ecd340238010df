package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/spf13/afero"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
)

var _ billing.PDFRenderer = (*ChromeRenderer)(nil)

// ChromeConfig opciones del motor Chromium.
type ChromeConfig struct {
	Bin       string        // Ruta al ejecutable; vacío = buscar o descargar con launcher
	AssetsDir string        // Directorio base para resolver imágenes/CSS relativos del HTML; vacío = directorio temporal
	Timeout   time.Duration // Tiempo máximo por documento
}

// ChromeRenderer convierte HTML en PDF con un único navegador headless compartido.
// Cada documento se escribe como archivo temporal dentro del directorio de recursos y se abre
// por file://, así las rutas relativas (logo.png, CSS) resuelven contra ese directorio.
// Cada documento usa su propia pestaña, así que admite renders concurrentes.
type ChromeRenderer struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	fs        afero.Fs
	assetsDir string
	timeout   time.Duration
}

// NewChromeRenderer lanza el navegador y se conecta a él. Llamar Close al apagar.
func NewChromeRenderer(cfg ChromeConfig) (*ChromeRenderer, error) {
	assetsDir := cfg.AssetsDir
	if assetsDir == "" {
		assetsDir = os.TempDir()
	}
	abs, err := filepath.Abs(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("directorio de recursos: %w", err)
	}

	l := launcher.New().Headless(true).Leakless(false)
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("lanzar chromium: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("conectar a chromium: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{
		browser:   browser,
		launcher:  l,
		fs:        afero.NewOsFs(),
		assetsDir: abs,
		timeout:   timeout,
	}, nil
}

// RenderPDF carga el HTML en una pestaña nueva y la imprime a PDF.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, doc billing.Document) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, cleanup, err := r.load(ctx, doc.HTML)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: chrome: imprimir PDF: %v", domain.ErrRendering, err)
	}
	b, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: chrome: leer PDF: %v", domain.ErrRendering, err)
	}
	return checkPDF(EngineChrome, b)
}

// load escribe el HTML como archivo temporal en el directorio de recursos y lo abre en una pestaña nueva.
// La pestaña devuelta está atada a ctx. cleanup cierra la pestaña sin el plazo de ctx y borra el archivo.
func (r *ChromeRenderer) load(ctx context.Context, html string) (*rod.Page, func(), error) {
	f, err := afero.TempFile(r.fs, r.assetsDir, ".invoice-*.html")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: chrome: archivo temporal: %v", domain.ErrRendering, err)
	}
	path := f.Name()
	_, writeErr := f.WriteString(html)
	if err := errors.Join(writeErr, f.Close()); err != nil {
		_ = r.fs.Remove(path)
		return nil, nil, fmt.Errorf("%w: chrome: escribir %s: %v", domain.ErrRendering, path, err)
	}

	// La pestaña se crea con el contexto del navegador para poder cerrarla aunque ctx haya vencido.
	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = r.fs.Remove(path)
		return nil, nil, fmt.Errorf("%w: chrome: abrir pestaña: %v", domain.ErrRendering, err)
	}
	cleanup := func() {
		_ = page.Close()
		_ = r.fs.Remove(path)
	}

	p := page.Context(ctx)
	if err := p.Navigate(fileURL(path)); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: chrome: cargar HTML: %v", domain.ErrRendering, err)
	}
	if err := p.WaitLoad(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: chrome: esperar carga: %v", domain.ErrRendering, err)
	}
	return p, cleanup, nil
}

// Close cierra el navegador y termina el proceso.
func (r *ChromeRenderer) Close() error {
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}

func fileURL(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}
