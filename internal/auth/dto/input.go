package dto

// UpdateProfileInput changes the profile of the signed-in user. Nil fields
// keep the current value; an empty name, email or department is ignored.
type UpdateProfileInput struct {
	Name       *string
	Email      *string
	Department *string
	Phone      *string
	Address    *string
	Avatar     *string
}
