package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"al_jazira_website/middleware"
	"al_jazira_website/services/i18n"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var files embed.FS

// base holds every page parsed once with placeholder funcs; each render
// clones it and binds the request-scoped ones.
var base = template.Must(template.New("pages").Funcs(funcs(context.Background(), "")).ParseFS(files, "html/*.html"))

func funcs(ctx context.Context, assetBase string) template.FuncMap {
	return template.FuncMap{
		"t": func(key string, args ...map[string]interface{}) string {
			return i18n.T(ctx, key, args...)
		},
		"rich": func(key string, args ...map[string]interface{}) template.HTML {
			return RichText(ctx, key, args...)
		},
		"kv": func(key string, value interface{}) map[string]interface{} {
			return map[string]interface{}{key: value}
		},
		"nonce": func() string {
			return middleware.GetNonce(ctx)
		},
		"asset": func(name string) string {
			return AssetURL(assetBase, name)
		},
		"icon":  Icon,
		"year":  func() int { return time.Now().Year() },
		"lower": strings.ToLower,
	}
}

// AssetURL builds a cache-busted URL for a file under the static tree.
// base is "/static" locally or the CDN prefix when assets are published to R2.
func AssetURL(base, name string) string {
	if base == "" {
		base = "/static"
	}
	name = strings.TrimPrefix(name, "/")
	return fmt.Sprintf("%s/%s?v=%s", strings.TrimSuffix(base, "/"), name, middleware.AssetVersion(name))
}

// render returns a component executing the named template with data
func render(name string, assetBase string, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, err := base.Clone()
		if err != nil {
			return err
		}
		tmpl.Funcs(funcs(ctx, assetBase))
		return tmpl.ExecuteTemplate(w, name, data)
	})
}
