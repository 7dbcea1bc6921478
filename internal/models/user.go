package models

// Account status values
const (
	StatusActive = "Active"
	StatusBanned = "Banned"
)

// Preferences holds the style profile used to bias AI answers
type Preferences struct {
	Style  string `json:"style"`
	Budget string `json:"budget"`
	Food   string `json:"food"`
	Travel string `json:"travel,omitempty"`
}

// DefaultPreferences are applied to new accounts and to sessions whose account has none
func DefaultPreferences() Preferences {
	return Preferences{
		Style:  "Casual",
		Budget: "Medium",
		Food:   "Everything",
	}
}

// UserAccount is a row of the admin-visible account table. The same shape is
// stored in the session slot as the session profile.
type UserAccount struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Avatar       string       `json:"avatar"`
	Age          string       `json:"age,omitempty"`
	Gender       string       `json:"gender,omitempty"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	Status       string       `json:"status,omitempty"`
	JoinDate     string       `json:"joinDate,omitempty"`
	PasswordHash string       `json:"passwordHash,omitempty"`
}

// IsBanned reports whether the account is blocked from signing in
func (u UserAccount) IsBanned() bool {
	return u.Status == StatusBanned
}

// UserUpdate carries the fields of an account that are present in an update.
// A nil field is absent and leaves the stored value untouched.
type UserUpdate struct {
	ID           *string      `json:"id,omitempty"`
	Name         *string      `json:"name,omitempty"`
	Username     *string      `json:"username,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Avatar       *string      `json:"avatar,omitempty"`
	Age          *string      `json:"age,omitempty"`
	Gender       *string      `json:"gender,omitempty"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	Status       *string      `json:"status,omitempty"`
	JoinDate     *string      `json:"joinDate,omitempty"`
	PasswordHash *string      `json:"passwordHash,omitempty"`
}

// Apply returns a copy of u with every present field of upd written over it.
func (u UserAccount) Apply(upd UserUpdate) UserAccount {
	out := u
	setString(&out.ID, upd.ID)
	setString(&out.Name, upd.Name)
	setString(&out.Username, upd.Username)
	setString(&out.Email, upd.Email)
	setString(&out.Avatar, upd.Avatar)
	setString(&out.Age, upd.Age)
	setString(&out.Gender, upd.Gender)
	setString(&out.Status, upd.Status)
	setString(&out.JoinDate, upd.JoinDate)
	setString(&out.PasswordHash, upd.PasswordHash)
	if upd.Preferences != nil {
		p := *upd.Preferences
		out.Preferences = &p
	}
	return out
}

// ProfileUpdate describes u as it is pushed from the session slot into the account table.
// Profile fields are always present; account-only fields (status, join date, password hash)
// only when the session actually carries them.
func (u UserAccount) ProfileUpdate() UserUpdate {
	upd := UserUpdate{
		ID:          strPtr(u.ID),
		Name:        strPtr(u.Name),
		Username:    strPtr(u.Username),
		Email:       strPtr(u.Email),
		Avatar:      strPtr(u.Avatar),
		Age:         strPtr(u.Age),
		Gender:      strPtr(u.Gender),
		Preferences: u.Preferences,
	}
	if u.Status != "" {
		upd.Status = strPtr(u.Status)
	}
	if u.JoinDate != "" {
		upd.JoinDate = strPtr(u.JoinDate)
	}
	if u.PasswordHash != "" {
		upd.PasswordHash = strPtr(u.PasswordHash)
	}
	return upd
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func strPtr(s string) *string {
	return &s
}
