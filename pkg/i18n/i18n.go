// Package i18n localizes user-facing messages. German is the default
// language; English is bundled as well and more files can be loaded at
// startup.
package i18n

import (
	"embed"
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

const DefaultLanguage = "de"

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
	once   sync.Once
)

// Init builds the bundle from the embedded locale files. Safe to call more
// than once.
func Init() {
	once.Do(func() {
		b := goi18n.NewBundle(language.German)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := locales.ReadDir("locales")
		if err != nil {
			panic(err)
		}
		for _, e := range entries {
			data, err := locales.ReadFile("locales/" + e.Name())
			if err != nil {
				panic(err)
			}
			if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
				panic(err)
			}
		}

		mu.Lock()
		bundle = b
		mu.Unlock()
	})
}

// Load adds a message file from disk, e.g. "locales/active.fr.json".
func Load(path string) error {
	Init()
	mu.Lock()
	defer mu.Unlock()
	_, err := bundle.LoadMessageFile(path)
	return err
}

// Localize renders message id in lang, falling back to German and finally
// to the id itself.
func Localize(lang, id string, data map[string]any) string {
	Init()
	mu.RLock()
	defer mu.RUnlock()

	localizer := goi18n.NewLocalizer(bundle, lang, DefaultLanguage)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// T localizes id in the default language.
func T(id string, data map[string]any) string {
	return Localize(DefaultLanguage, id, data)
}
