package domain

import "net/url"

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// User is the signed-in identity shown in the profile page.
type User struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// DefaultAvatar returns the generated avatar URL for a seed (usually the email).
func DefaultAvatar(seed string) string {
	return avatarBaseURL + url.QueryEscape(seed)
}

// WithDefaults fills the avatar and bio the way sign-in does.
func (u User) WithDefaults() User {
	if u.Avatar == "" {
		u.Avatar = DefaultAvatar(u.Email)
	}
	return u
}

// UserPatch lists profile fields to merge. Nil fields are left untouched.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
}
