package models

// ProfileUpdate is a partial update of the editable profile fields.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.FirstName == nil && u.LastName == nil &&
		u.Bio == nil && u.PhoneNumber == nil && u.DateOfBirth == nil
}

// Fields flattens the non-nil values into multipart form fields.
func (u ProfileUpdate) Fields() map[string]string {
	fields := make(map[string]string)
	set := func(name string, v *string) {
		if v != nil {
			fields[name] = *v
		}
	}
	set("username", u.Username)
	set("first_name", u.FirstName)
	set("last_name", u.LastName)
	set("bio", u.Bio)
	set("phone_number", u.PhoneNumber)
	set("date_of_birth", u.DateOfBirth)
	return fields
}

// ProfilePicture is an uploaded image held in memory so the request that
// carries it can be replayed.
type ProfilePicture struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProfileResponse is returned by PUT /update-profile/.
type ProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
