package pages

import (
	"context"
	"fmt"
	"html/template"

	"al_jazira_website/services/i18n"

	"github.com/microcosm-cc/bluemonday"
)

// richPolicy allows the inline emphasis used in translated copy
var richPolicy = bluemonday.NewPolicy().AllowElements("strong", "em", "br")

// RichText translates key and renders the inline markup the translation carries.
// Interpolated values are escaped and the result is sanitized before it is trusted.
func RichText(ctx context.Context, key string, args ...map[string]interface{}) template.HTML {
	var escaped []map[string]interface{}
	if len(args) > 0 {
		values := make(map[string]interface{}, len(args[0]))
		for k, v := range args[0] {
			values[k] = template.HTMLEscapeString(fmt.Sprintf("%v", v))
		}
		escaped = append(escaped, values)
	}
	return template.HTML(richPolicy.Sanitize(i18n.T(ctx, key, escaped...)))
}
