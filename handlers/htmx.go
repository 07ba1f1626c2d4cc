package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// renderComponent writes a page or partial with an explicit HTML content type.
// Partials starting with <form> are not sniffed as HTML by net/http.
func renderComponent(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// redirectToContact sends plain form posts back to the contact section (post/redirect/get)
func redirectToContact(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/#contact")
}
