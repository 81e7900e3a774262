package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/leave-tracker/internal/domain/access"
)

// TestCompare_MatrizCompleta verifica el orden total sobre la matriz 3x3 de roles.
func TestCompare_MatrizCompleta(t *testing.T) {
	for i, a := range access.Roles {
		for j, b := range access.Roles {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			assert.Equal(t, want, access.Compare(a, b), "Compare(%s, %s)", a, b)
			assert.Equal(t, -want, access.Compare(b, a), "antisimetría %s/%s", a, b)
		}
	}
}

func TestAtLeast_Monotono(t *testing.T) {
	for i, role := range access.Roles {
		for j, threshold := range access.Roles {
			assert.Equal(t, i >= j, access.AtLeast(role, threshold), "AtLeast(%s, %s)", role, threshold)
		}
	}
	// si r alcanza un umbral, cualquier rol superior también lo alcanza
	assert.True(t, access.AtLeast(access.Admin, access.Staff))
	assert.False(t, access.AtLeast(access.Volunteer, access.Staff))
}

func TestAtLeast_Anonimo(t *testing.T) {
	var none access.Role
	assert.False(t, none.Valid())
	assert.False(t, access.AtLeast(none, access.Volunteer))
}

func TestParseRole(t *testing.T) {
	for _, r := range access.Roles {
		got, ok := access.ParseRole(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
	got, ok := access.ParseRole(" ADMIN ")
	assert.True(t, ok)
	assert.Equal(t, access.Admin, got)

	_, ok = access.ParseRole("bodeguero")
	assert.False(t, ok)
}
