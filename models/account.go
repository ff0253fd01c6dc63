package models

// Account is a registered user or administrator.
type Account struct {
	ID            string   `json:"_id" dynamodbav:"id"`
	Name          string   `json:"name" dynamodbav:"name"`
	Email         string   `json:"email" dynamodbav:"email"` // Queried via the email-index GSI
	Password      string   `json:"-" dynamodbav:"password"`  // Plaintext, never rendered
	Location      string   `json:"location" dynamodbav:"location"`
	SkillsOffered []string `json:"skills_offered" dynamodbav:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted" dynamodbav:"skills_wanted"`
	Availability  string   `json:"availability" dynamodbav:"availability"`
	Role          string   `json:"role" dynamodbav:"role"`
	Public        bool     `json:"public" dynamodbav:"public"`
	Banned        bool     `json:"banned" dynamodbav:"banned"`
	AvatarKey     string   `json:"avatar_key,omitempty" dynamodbav:"avatar_key,omitempty"`
}

// Sanitized returns a copy of the account without its password.
func (a Account) Sanitized() Account {
	a.Password = ""
	return a
}

// SanitizeAccounts strips passwords from every account in place.
func SanitizeAccounts(accounts []Account) []Account {
	for i := range accounts {
		accounts[i].Password = ""
	}
	return accounts
}

// SignupInput carries the fields a new account is created from.
type SignupInput struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required"`
	Password      string   `json:"password" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	SkillsOffered []string `json:"skills_offered" validate:"required"`
	SkillsWanted  []string `json:"skills_wanted" validate:"required"`
	Availability  string   `json:"availability" validate:"required"`
}

// ProfileUpdate lists the fields an account holder may change on their own
// profile. Nil fields are left untouched. Role and banned are not
// updatable here.
type ProfileUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Password      *string  `json:"password,omitempty"`
	Location      *string  `json:"location,omitempty"`
	SkillsOffered []string `json:"skills_offered,omitempty"`
	SkillsWanted  []string `json:"skills_wanted,omitempty"`
	Availability  *string  `json:"availability,omitempty"`
	Public        *bool    `json:"public,omitempty"`
	AvatarKey     *string  `json:"avatar_key,omitempty"`
}

// Patch converts the update into a store patch.
func (u ProfileUpdate) Patch() AccountPatch {
	return AccountPatch{
		Name:          u.Name,
		Password:      u.Password,
		Location:      u.Location,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		Availability:  u.Availability,
		Public:        u.Public,
		AvatarKey:     u.AvatarKey,
	}
}

// AccountPatch is a partial update applied by the store. It is built either
// from a ProfileUpdate or by moderation code; callers never decode it from a
// request body.
type AccountPatch struct {
	Name          *string
	Password      *string
	Location      *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *string
	Public        *bool
	Banned        *bool
	AvatarKey     *string
}

// Fields returns the set attributes keyed by their stored names.
func (p AccountPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Password != nil {
		fields["password"] = *p.Password
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.SkillsOffered != nil {
		fields["skills_offered"] = p.SkillsOffered
	}
	if p.SkillsWanted != nil {
		fields["skills_wanted"] = p.SkillsWanted
	}
	if p.Availability != nil {
		fields["availability"] = *p.Availability
	}
	if p.Public != nil {
		fields["public"] = *p.Public
	}
	if p.Banned != nil {
		fields["banned"] = *p.Banned
	}
	if p.AvatarKey != nil {
		fields["avatar_key"] = *p.AvatarKey
	}
	return fields
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Apply writes the set fields onto a.
func (p AccountPatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.SkillsOffered != nil {
		a.SkillsOffered = append([]string{}, p.SkillsOffered...)
	}
	if p.SkillsWanted != nil {
		a.SkillsWanted = append([]string{}, p.SkillsWanted...)
	}
	if p.Availability != nil {
		a.Availability = *p.Availability
	}
	if p.Public != nil {
		a.Public = *p.Public
	}
	if p.Banned != nil {
		a.Banned = *p.Banned
	}
	if p.AvatarKey != nil {
		a.AvatarKey = *p.AvatarKey
	}
}
