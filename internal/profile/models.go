package profile

import "time"

// Identity is the profile row owned by the surrounding application. The relay
// only ever reads it.
type Identity struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(128)" json:"name"`
	Headline  string    `gorm:"type:varchar(256)" json:"headline"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Identity) TableName() string { return "profiles" }

type CurrentState struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	RoleTitle    string    `gorm:"type:varchar(128)" json:"role_title"`
	Location     string    `gorm:"type:varchar(128)" json:"location"`
	DayRate      string    `gorm:"type:varchar(64)" json:"day_rate"`
	Availability string    `gorm:"type:varchar(128)" json:"availability"`
	WorkStyle    string    `gorm:"type:varchar(128)" json:"work_style"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CurrentState) TableName() string { return "current_state" }

type Skill struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"type:varchar(64);index;not null" json:"-"`
	Name   string `gorm:"type:varchar(128);not null" json:"name"`
}

func (Skill) TableName() string { return "skills" }
