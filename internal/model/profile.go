package model

import "time"

// Package model contains pure domain models with no database-specific
// dependencies or tags beyond JSON. They are shared across layers
// (HTTP, service, repository) without coupling to persistence.

// Profile field defaults applied on registration.
const (
	DefaultName       = "ゲスト"
	DefaultAge        = 18
	DefaultBio        = "自己紹介を追加してください"
	DefaultPrefecture = "北海道"
	DefaultCity       = "札幌市中央区"
)

// Age bounds for a valid profile.
const (
	MinAge = 18
	MaxAge = 99
)

// Genders is the closed set of selectable gender values.
var Genders = []string{"未設定", "男性", "女性", "その他"}

// Disabilities is the closed set of selectable disability categories.
var Disabilities = []string{"未設定", "身体障害", "知的障害", "精神障害", "発達障害", "内部障害", "その他"}

// UserProfile is a member's public profile record, keyed by the owning
// user's id. PhotoURL is empty until a profile image has been uploaded;
// its lifecycle is independent from the rest of the record.
type UserProfile struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Prefecture string    `json:"prefecture"`
	City       string    `json:"city"`
	Disability string    `json:"disability"`
	Bio        string    `json:"bio"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Location is the display form used for directory matching.
func (p *UserProfile) Location() string {
	return p.Prefecture + " " + p.City
}

// DefaultProfile returns the profile created implicitly at registration.
func DefaultProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:     userID,
		Name:       DefaultName,
		Age:        DefaultAge,
		Gender:     "未設定",
		Prefecture: DefaultPrefecture,
		City:       DefaultCity,
		Disability: "未設定",
		Bio:        DefaultBio,
	}
}
