package models

// ProfileSettings is the optional per-user profile block.
type ProfileSettings struct {
	Bio          string   `json:"bio,omitempty" bson:"bio,omitempty"`
	AvatarURL    string   `json:"avatar_url,omitempty" bson:"avatar_url,omitempty" validate:"omitempty,url"`
	BannerURL    string   `json:"banner_url,omitempty" bson:"banner_url,omitempty" validate:"omitempty,url"`
	Theme        string   `json:"theme,omitempty" bson:"theme,omitempty"`
	Links        []string `json:"links,omitempty" bson:"links,omitempty" validate:"omitempty,dive,url"`
	PrivacyLevel string   `json:"privacy_level,omitempty" bson:"privacy_level,omitempty" validate:"omitempty,oneof=public followers subscribers private"`
}

type User struct {
	Username  string           `json:"username" bson:"username" validate:"required"`
	Email     string           `json:"email" bson:"email" validate:"required,email"`
	Name      string           `json:"name,omitempty" bson:"name,omitempty"`
	Settings  *ProfileSettings `json:"settings,omitempty" bson:"settings,omitempty"`
	IsCreator *bool            `json:"is_creator,omitempty" bson:"is_creator"`
	Verified  bool             `json:"verified" bson:"verified"`
}

// ApplyDefaults fills absent fields with the platform defaults. IsCreator is
// a pointer so an explicit false survives the default.
func (u *User) ApplyDefaults() {
	if u.IsCreator == nil {
		t := true
		u.IsCreator = &t
	}
	if u.Settings != nil {
		if u.Settings.Theme == "" {
			u.Settings.Theme = "light"
		}
		if u.Settings.PrivacyLevel == "" {
			u.Settings.PrivacyLevel = "public"
		}
	}
}
