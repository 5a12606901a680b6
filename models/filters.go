package models

// UserFilter narrows a user listing. Nil fields are ignored, so the
// zero value matches every account.
type UserFilter struct {
	Role   *string
	Active *bool
}

// UserUpdate describes a partial update to a user account. Nil fields
// are left untouched by the repository.
type UserUpdate struct {
	Email  *string
	Phone  *string
	Role   *string
	Active *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Phone == nil && u.Role == nil && u.Active == nil
}
