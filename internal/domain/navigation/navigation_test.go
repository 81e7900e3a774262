package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
)

func hrefs(links []navigation.NavLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Href)
	}
	return out
}

func TestBuild_PorRol(t *testing.T) {
	assert.Equal(t, []string{"/dashboard", "/dashboard/submit"},
		hrefs(navigation.Build(access.Volunteer, "")))
	assert.Equal(t, []string{"/dashboard", "/dashboard/submit", "/users"},
		hrefs(navigation.Build(access.Staff, "")))
	assert.Equal(t, []string{"/dashboard", "/dashboard/submit", "/users", "/users/add"},
		hrefs(navigation.Build(access.Admin, "")))
}

func TestBuild_EnlaceActivo(t *testing.T) {
	links := navigation.Build(access.Admin, navigation.HrefUsers)
	active := 0
	for _, l := range links {
		if l.Active {
			active++
			assert.Equal(t, "Users", l.Text)
		}
	}
	assert.Equal(t, 1, active)

	for _, l := range navigation.Build(access.Volunteer, "/requests/abc") {
		assert.False(t, l.Active, "ningún enlace coincide con la ruta")
	}
}

func TestBuild_OcultaUsersAVoluntario(t *testing.T) {
	links := navigation.Build(access.Volunteer, navigation.HrefUsers)
	assert.Len(t, links, 2)
	for _, l := range links {
		assert.False(t, l.Active)
	}
}

func TestPublic(t *testing.T) {
	links := navigation.Public(navigation.HrefLogin)
	assert.Equal(t, []navigation.NavLink{{Text: "Login", Href: "/login", Active: true}}, links)
	assert.False(t, navigation.Public("/forgot")[0].Active)
}
