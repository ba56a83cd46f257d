package domain

// Role identifies what a user is allowed to do in the portal
type Role string

const (
	RoleOrganizer   Role = "organizer"
	RoleParticipant Role = "participant"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleOrganizer || r == RoleParticipant
}

// User represents a portal account. The role is fixed at signup.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(64);not null;uniqueIndex:uq_users_username" json:"username"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(16);not null" json:"role"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
