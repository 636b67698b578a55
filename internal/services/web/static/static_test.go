package static

import (
	"image/png"
	"io/fs"
	"testing"
)

func TestIconIsSquarePNG(t *testing.T) {
	t.Parallel()

	f, err := FS.Open(IconFile)
	if err != nil {
		t.Fatalf("open icon: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode icon: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 100 {
		t.Fatalf("icon = %dx%d, want 100x100", cfg.Width, cfg.Height)
	}
}

func TestStylesheetIsEmbedded(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(FS, "app.css")
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("stylesheet is empty")
	}
}
