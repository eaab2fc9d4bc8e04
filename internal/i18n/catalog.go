package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every message for every supported language.
type Bundle struct {
	messages map[Language]map[string]string
	builder  *catalog.Builder
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the bundle embedded in the binary.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS loads locales/<lang>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: make(map[Language]map[string]string),
		builder:  catalog.NewBuilder(),
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// validate requires every language to define exactly the English key set,
// so a lookup through the printer never falls through to the raw key.
func (b *Bundle) validate() error {
	if _, ok := b.messages[English]; !ok {
		return fmt.Errorf("base language %s is not defined in catalogs", English)
	}
	base := b.Keys(English)
	for _, lang := range b.Languages() {
		if lang == English {
			continue
		}
		keys := b.Keys(lang)
		if missing := difference(base, keys); len(missing) > 0 {
			return fmt.Errorf("catalog %s: missing keys %s", lang, strings.Join(missing, ", "))
		}
		if extra := difference(keys, base); len(extra) > 0 {
			return fmt.Errorf("catalog %s: keys not in %s: %s", lang, English, strings.Join(extra, ", "))
		}
	}
	return nil
}

// difference returns the members of a that are not in b.
func difference(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, k := range b {
		in[k] = true
	}
	var out []string
	for _, k := range a {
		if !in[k] {
			out = append(out, k)
		}
	}
	return out
}

func (b *Bundle) add(path string, file catalogFile) error {
	dirLocale := filepath.Base(filepath.Dir(path))
	if file.Locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", path, file.Locale, dirLocale)
	}
	namespace := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if file.Namespace != namespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", path, file.Namespace, namespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", path)
	}

	lang, err := ParseLanguage(file.Locale)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	msgs, ok := b.messages[lang]
	if !ok {
		msgs = make(map[string]string)
		b.messages[lang] = msgs
	}

	keys := make([]string, 0, len(file.Messages))
	for k := range file.Messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q for %s", path, key, lang)
		}
		value := file.Messages[key]
		msgs[key] = value
		if err := b.builder.SetString(lang.Tag(), key, value); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", path, key, err)
		}
	}
	return nil
}

// Languages returns the languages present in the bundle.
func (b *Bundle) Languages() []Language {
	var out []Language
	for _, l := range Supported() {
		if _, ok := b.messages[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Keys returns the sorted message keys defined for lang.
func (b *Bundle) Keys(lang Language) []string {
	keys := make([]string, 0, len(b.messages[lang]))
	for k := range b.messages[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *Bundle) catalog() catalog.Catalog {
	return b.builder
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(err)
	}
	return b
}
