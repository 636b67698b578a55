// Package catalog loads the embedded message catalogs and registers them with
// x/text/message so printers resolve translated copy by key.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every page can fall back to.
const BaseLocale = "en-US"

// Keys prefixed "core." may only live in this namespace.
const coreNamespace = "core"

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustRegister(LoadEmbedded())

// source is one locales/<locale>/<namespace>.yaml file.
type source struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds one flat key/value table per locale.
type Bundle struct {
	tables map[string]map[string]string
}

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS loads every locales/*/*.yaml file in fsys. The base locale must
// be present.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{tables: map[string]map[string]string{}}
	for _, p := range paths {
		src, err := readSource(fsys, p)
		if err != nil {
			return nil, err
		}
		if err := b.merge(p, src); err != nil {
			return nil, err
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s has no catalog", BaseLocale)
	}
	return b, nil
}

// readSource parses one file and checks its header against its path. The
// namespace is pinned to the file name, so a locale cannot define the same
// namespace twice.
func readSource(fsys fs.FS, p string) (source, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return source{}, fmt.Errorf("read catalog %s: %w", p, err)
	}
	var src source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return source{}, fmt.Errorf("parse catalog %s: %w", p, err)
	}
	dir, name := path.Split(p)
	wantLocale := path.Base(dir)
	wantNamespace := strings.TrimSuffix(name, path.Ext(name))
	src.Locale = strings.TrimSpace(src.Locale)
	src.Namespace = strings.TrimSpace(src.Namespace)
	switch {
	case src.Locale != wantLocale:
		return source{}, fmt.Errorf("catalog %s: locale %q does not match directory %q", p, src.Locale, wantLocale)
	case src.Namespace != wantNamespace:
		return source{}, fmt.Errorf("catalog %s: namespace %q does not match file name %q", p, src.Namespace, wantNamespace)
	case len(src.Messages) == 0:
		return source{}, fmt.Errorf("catalog %s: no messages", p)
	}
	return src, nil
}

func (b *Bundle) merge(p string, src source) error {
	table := b.tables[src.Locale]
	if table == nil {
		table = make(map[string]string, len(src.Messages))
		b.tables[src.Locale] = table
	}
	for key, value := range src.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", p)
		}
		if src.Namespace != coreNamespace && strings.HasPrefix(key, coreNamespace+".") {
			return fmt.Errorf("catalog %s: key %q belongs in the core namespace", p, key)
		}
		if _, dup := table[key]; dup {
			return fmt.Errorf("catalog %s: key %q already defined for %s", p, key, src.Locale)
		}
		table[key] = value
	}
	return nil
}

// Register installs every message with x/text/message. A regional locale is
// also installed under its bare language, so "pt" printers get pt-BR copy.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tags, err := registrationTags(locale)
		if err != nil {
			return err
		}
		table := b.tables[locale]
		for _, key := range slices.Sorted(maps.Keys(table)) {
			for _, tag := range tags {
				if err := message.SetString(tag, key, table[key]); err != nil {
					return fmt.Errorf("register %s/%s: %w", tag, key, err)
				}
			}
		}
	}
	return nil
}

func registrationTags(locale string) ([]language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
	}
	tags := []language.Tag{tag}
	if base, conf := tag.Base(); conf != language.No {
		if bare := language.Make(base.String()); bare != tag {
			tags = append(tags, bare)
		}
	}
	return tags, nil
}

// HasLocale reports whether locale has a catalog.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.tables[strings.TrimSpace(locale)]
	return ok
}

// Locales lists the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.tables))
}

// LocaleMessages returns a copy of one locale's table.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	table, ok := b.tables[strings.TrimSpace(locale)]
	if !ok {
		return map[string]string{}
	}
	return maps.Clone(table)
}

// Message looks key up in locale, then in the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	for _, l := range []string{strings.TrimSpace(locale), BaseLocale} {
		if value, ok := b.tables[l][key]; ok {
			return value, true
		}
	}
	return "", false
}

func mustRegister(b *Bundle, err error) *Bundle {
	if err == nil {
		err = b.Register()
	}
	if err != nil {
		panic(err)
	}
	return b
}
