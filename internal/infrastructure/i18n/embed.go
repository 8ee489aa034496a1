package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewEmbeddedService cria o serviço de i18n com os locales embutidos no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return NewServiceFS(sub, defaultLang)
}
