package catalog

import (
	"sort"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := sortedKeys(bundle.LocaleMessages(BaseLocale))
	for _, locale := range bundle.Locales() {
		got := sortedKeys(bundle.LocaleMessages(locale))
		if len(got) != len(base) {
			t.Fatalf("locale %s has %d keys, want %d", locale, len(got), len(base))
		}
		for i := range base {
			if got[i] != base[i] {
				t.Fatalf("locale %s key[%d] = %q, want %q", locale, i, got[i], base[i])
			}
		}
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/web.yaml": {Data: []byte(`locale: "en-US"
namespace: "web"
messages:
  "core.bad": "nope"
`)},
		"locales/en-US/core.yaml": {Data: []byte(`locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte(`locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)},
		"locales/en-US/web.yaml": {Data: []byte(`locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/web.yaml": {Data: []byte(`locale: "pt-BR"
namespace: "web"
messages:
  "a.key": "a"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRejectsNamespaceMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/web.yaml": {Data: []byte(`locale: "en-US"
namespace: "core"
messages:
  "core.app_name": "App"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected namespace mismatch error")
	}
}

func TestRegisterAddsBareLanguageTag(t *testing.T) {
	Default()

	p := message.NewPrinter(language.MustParse("pt"))
	if got := p.Sprintf("header.new_task"); got != "Nova Tarefa" {
		t.Fatalf("pt header.new_task = %q, want %q", got, "Nova Tarefa")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR/web.yaml": {Data: []byte(`locale: "pt-BR"
namespace: "web"
messages:
  "a.key": "a"
`)},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/web.yaml": {Data: []byte("locale: [unterminated\n")},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/web.yaml": {Data: []byte(`locale: "en-US"
namespace: "web"
messages:
  "only.base": "base copy"
  "both": "english"
`)},
		"locales/pt-BR/web.yaml": {Data: []byte(`locale: "pt-BR"
namespace: "web"
messages:
  "both": "portugues"
`)},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, ok := bundle.Message("pt-BR", "both"); !ok || got != "portugues" {
		t.Fatalf("Message(pt-BR, both) = %q, %t", got, ok)
	}
	if got, ok := bundle.Message("pt-BR", "only.base"); !ok || got != "base copy" {
		t.Fatalf("Message(pt-BR, only.base) = %q, %t", got, ok)
	}
	if _, ok := bundle.Message("pt-BR", "missing"); ok {
		t.Fatal("expected missing key to report false")
	}
}

func TestDefaultBundleRegistersPrinterMessages(t *testing.T) {
	Default()

	p := message.NewPrinter(language.MustParse("pt-BR"))
	if got := p.Sprintf("header.new_task"); got != "Nova Tarefa" {
		t.Fatalf("pt-BR header.new_task = %q, want %q", got, "Nova Tarefa")
	}
	p = message.NewPrinter(language.MustParse("en-US"))
	if got := p.Sprintf("header.new_task"); got != "New Task" {
		t.Fatalf("en-US header.new_task = %q, want %q", got, "New Task")
	}
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
