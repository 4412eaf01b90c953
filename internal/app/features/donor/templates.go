// internal/app/features/donor/templates.go
package donor

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "donor",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
