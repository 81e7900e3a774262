package navigation

import "github.com/jhoicas/leave-tracker/internal/domain/access"

// Rutas de la aplicación referenciadas por el menú y por las redirecciones.
const (
	HrefLogin     = "/login"
	HrefDashboard = "/dashboard"
	HrefSubmit    = "/dashboard/submit"
	HrefUsers     = "/users"
	HrefAddUsers  = "/users/add"
)

// NavLink enlace del menú. Se construye por petición.
type NavLink struct {
	Text   string `json:"text"`
	Href   string `json:"href"`
	Active bool   `json:"active,omitempty"`
}

// Build construye el menú según el rol del actor; marca como activo el enlace activeHref.
func Build(role access.Role, activeHref string) []NavLink {
	links := []NavLink{
		{Text: "Dashboard", Href: HrefDashboard},
		{Text: "Submit a Request", Href: HrefSubmit},
	}
	if access.AtLeast(role, access.Staff) {
		links = append(links, NavLink{Text: "Users", Href: HrefUsers})
	}
	if role == access.Admin {
		links = append(links, NavLink{Text: "Add Users", Href: HrefAddUsers})
	}
	return markActive(links, activeHref)
}

// Public menú de las páginas sin sesión (login, registro, reset).
func Public(activeHref string) []NavLink {
	return markActive([]NavLink{{Text: "Login", Href: HrefLogin}}, activeHref)
}

func markActive(links []NavLink, activeHref string) []NavLink {
	for i := range links {
		if links[i].Href == activeHref {
			links[i].Active = true
			break
		}
	}
	return links
}
