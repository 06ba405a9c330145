package photo

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldFor(t *testing.T) {
	tests := []struct {
		kind   Kind
		role   Role
		column string
		arity  Arity
	}{
		{KindMember, RoleAvatar, "avatar", AritySingle},
		{KindMember, RoleAlbum, "album", ArityList},
		{KindMember, RolePedigree, "pedigree_photos", ArityList},
		{KindMember, RoleHealthCheck, "health_check_photos", ArityList},
		{KindPuppy, RoleCover, "cover_image", AritySingle},
		{KindPuppy, RoleAlbum, "album", ArityList},
		{KindPuppy, RolePedigree, "pedigree_photos", ArityList},
		{KindPuppy, RoleHealthCheck, "health_check_photos", ArityList},
		{KindEnvironment, RoleCover, "cover_image", AritySingle},
		{KindEnvironment, RoleAlbum, "album", ArityList},
		{KindEnvironment, RoleEquipment, "equipment_photos", ArityList},
		{KindEnvironment, RoleDetails, "detail_photos", ArityList},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.role), func(t *testing.T) {
			field, err := FieldFor(tt.kind, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.column, field.Column)
			assert.Equal(t, tt.arity, field.Arity)
		})
	}
}

func TestFieldForUnmapped(t *testing.T) {
	// Roles that exist elsewhere are still unmapped for the wrong kind.
	_, err := FieldFor(KindMember, RoleCover)
	assert.Error(t, err)

	_, err = FieldFor(KindPuppy, RoleAvatar)
	assert.Error(t, err)

	_, err = FieldFor(KindPuppy, RoleEquipment)
	assert.Error(t, err)

	_, err = FieldFor(KindEnvironment, RoleHealthCheck)
	assert.Error(t, err)

	_, err = FieldFor(Kind("unknown"), RoleAlbum)
	assert.Error(t, err)
}

func TestRolesMatchFieldMap(t *testing.T) {
	// Every advertised role must resolve, and nothing else should.
	for _, kind := range []Kind{KindMember, KindPuppy, KindEnvironment} {
		roles := Roles(kind)
		require.Len(t, roles, 4)
		for _, role := range roles {
			_, err := FieldFor(kind, role)
			assert.NoError(t, err, "kind %s role %s", kind, role)
		}
	}
	assert.Nil(t, Roles(Kind("unknown")))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(KindPuppy, "album")
	require.NoError(t, err)
	assert.Equal(t, RoleAlbum, role)

	_, err = ParseRole(KindPuppy, "avatar")
	assert.Error(t, err)

	_, err = ParseRole(KindMember, "")
	assert.Error(t, err)
}

func TestSizeLimit(t *testing.T) {
	assert.Equal(t, int64(10<<20), SizeLimit(KindMember))
	assert.Equal(t, int64(5<<20), SizeLimit(KindPuppy))
	assert.Equal(t, int64(5<<20), SizeLimit(KindEnvironment))
}

func TestBindingSingle(t *testing.T) {
	var cover string
	b := Binding{Single: &cover}

	b.Attach("https://cdn.test/files/a.jpg")
	assert.Equal(t, "https://cdn.test/files/a.jpg", cover)

	// Attaching again overwrites, never accumulates.
	b.Attach("https://cdn.test/files/b.jpg")
	assert.Equal(t, "https://cdn.test/files/b.jpg", cover)
	assert.Equal(t, []string{"https://cdn.test/files/b.jpg"}, b.URLs())

	b.Detach("https://cdn.test/files/b.jpg")
	assert.Empty(t, cover)
	assert.Nil(t, b.URLs())
}

func TestBindingSingleStaleDetach(t *testing.T) {
	cover := "https://cdn.test/files/u2.jpg"
	b := Binding{Single: &cover}

	// A delete for a URL the field no longer holds must not clear the
	// live reference.
	b.Detach("https://cdn.test/files/u1.jpg")
	assert.Equal(t, "https://cdn.test/files/u2.jpg", cover)
}

func TestBindingList(t *testing.T) {
	album := pq.StringArray{}
	b := Binding{List: &album}

	b.Attach("u1")
	b.Attach("u2")
	b.Attach("u3")
	assert.Equal(t, pq.StringArray{"u1", "u2", "u3"}, album)

	b.Detach("u2")
	assert.Equal(t, pq.StringArray{"u1", "u3"}, album)

	// Detaching an absent URL is a no-op.
	b.Detach("u2")
	assert.Equal(t, pq.StringArray{"u1", "u3"}, album)

	assert.Equal(t, []string{"u1", "u3"}, b.URLs())
}

func TestBindingURLsCopies(t *testing.T) {
	album := pq.StringArray{"u1"}
	b := Binding{List: &album}

	urls := b.URLs()
	urls[0] = "mutated"
	assert.Equal(t, pq.StringArray{"u1"}, album)
}
