// Package photo holds the static knowledge of the photo pipeline: which
// photo roles exist per entity kind, which database field each role owns,
// file limits and the MIME table. Both transaction handlers resolve
// everything through this package so the mapping stays reviewable in one
// place.
package photo

import (
	"fmt"

	"github.com/lib/pq"
)

// Kind identifies the entity kind owning a photo.
type Kind string

const (
	KindMember      Kind = "member"
	KindPuppy       Kind = "puppy"
	KindEnvironment Kind = "environment"
)

// Role is a named photo category scoped to an entity kind. It determines
// the storage path segment and the target database field.
type Role string

const (
	RoleAvatar      Role = "avatar"
	RoleCover       Role = "cover"
	RoleAlbum       Role = "album"
	RolePedigree    Role = "pedigree"
	RoleHealthCheck Role = "health_check"
	RoleEquipment   Role = "equipment"
	RoleDetails     Role = "details"
)

// Arity says whether a field holds one URL or an ordered list.
type Arity string

const (
	AritySingle Arity = "single"
	ArityList   Arity = "list"
)

// Field describes the database field owning one (kind, role) pair.
type Field struct {
	Column string
	Arity  Arity
}

// FieldFor resolves the owning field for (kind, role). A miss is a
// configuration error, not a user error.
func FieldFor(kind Kind, role Role) (Field, error) {
	switch kind {
	case KindMember:
		switch role {
		case RoleAvatar:
			return Field{Column: "avatar", Arity: AritySingle}, nil
		case RoleAlbum:
			return Field{Column: "album", Arity: ArityList}, nil
		case RolePedigree:
			return Field{Column: "pedigree_photos", Arity: ArityList}, nil
		case RoleHealthCheck:
			return Field{Column: "health_check_photos", Arity: ArityList}, nil
		}
	case KindPuppy:
		switch role {
		case RoleCover:
			return Field{Column: "cover_image", Arity: AritySingle}, nil
		case RoleAlbum:
			return Field{Column: "album", Arity: ArityList}, nil
		case RolePedigree:
			return Field{Column: "pedigree_photos", Arity: ArityList}, nil
		case RoleHealthCheck:
			return Field{Column: "health_check_photos", Arity: ArityList}, nil
		}
	case KindEnvironment:
		switch role {
		case RoleCover:
			return Field{Column: "cover_image", Arity: AritySingle}, nil
		case RoleAlbum:
			return Field{Column: "album", Arity: ArityList}, nil
		case RoleEquipment:
			return Field{Column: "equipment_photos", Arity: ArityList}, nil
		case RoleDetails:
			return Field{Column: "detail_photos", Arity: ArityList}, nil
		}
	}
	return Field{}, ErrUnmappedRole(kind, role)
}

// ErrUnmappedRole is the configuration error for a (kind, role) pair with
// no owning field.
func ErrUnmappedRole(kind Kind, role Role) error {
	return fmt.Errorf("no photo field mapped for kind %q role %q", kind, role)
}

// Roles lists the valid roles for a kind, in a stable order.
func Roles(kind Kind) []Role {
	switch kind {
	case KindMember:
		return []Role{RoleAvatar, RoleAlbum, RolePedigree, RoleHealthCheck}
	case KindPuppy:
		return []Role{RoleCover, RoleAlbum, RolePedigree, RoleHealthCheck}
	case KindEnvironment:
		return []Role{RoleCover, RoleAlbum, RoleEquipment, RoleDetails}
	default:
		return nil
	}
}

// ParseRole validates a client-supplied role string against a kind.
func ParseRole(kind Kind, s string) (Role, error) {
	for _, r := range Roles(kind) {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown photo role %q for %s", s, kind)
}

const (
	mb = 1 << 20

	// Externally visible size limits per entity kind.
	MemberSizeLimit      = 10 * mb
	PuppySizeLimit       = 5 * mb
	EnvironmentSizeLimit = 5 * mb
)

// SizeLimit returns the upload size limit for a kind, in bytes.
func SizeLimit(kind Kind) int64 {
	switch kind {
	case KindMember:
		return MemberSizeLimit
	case KindPuppy:
		return PuppySizeLimit
	case KindEnvironment:
		return EnvironmentSizeLimit
	default:
		return PuppySizeLimit
	}
}

// Binding points into the in-memory record at the field owning a role.
// Exactly one of Single/List is set, matching the field's arity.
type Binding struct {
	Single *string
	List   *pq.StringArray
}

// Attach applies a freshly uploaded URL: overwrite for singular fields,
// append for lists (order = upload order).
func (b Binding) Attach(url string) {
	if b.Single != nil {
		*b.Single = url
		return
	}
	*b.List = append(*b.List, url)
}

// Detach removes a URL: singular fields are cleared, lists are filtered.
// Detaching a URL the field does not hold is a no-op either way, so a
// stale delete never nulls a reference that was overwritten since.
func (b Binding) Detach(url string) {
	if b.Single != nil {
		if *b.Single == url {
			*b.Single = ""
		}
		return
	}
	kept := (*b.List)[:0]
	for _, u := range *b.List {
		if u != url {
			kept = append(kept, u)
		}
	}
	*b.List = kept
}

// URLs returns the current reference(s) held by the field.
func (b Binding) URLs() []string {
	if b.Single != nil {
		if *b.Single == "" {
			return nil
		}
		return []string{*b.Single}
	}
	return append([]string(nil), *b.List...)
}

// Owner is an entity record that carries photo fields.
type Owner interface {
	OwnerID() string
	OwnerKind() Kind
	// PhotoBinding resolves a role to the in-memory field. Implementations
	// switch exhaustively over their roles and error on anything else.
	PhotoBinding(role Role) (Binding, error)
}
