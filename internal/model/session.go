package model

// Session is a user-scoped container for one generated set of interview
// questions targeting a role.
//
// swagger:model Session
type Session struct {
	UUIDBase
	UserID        uint       `gorm:"index;not null" json:"userId"`
	Role          string     `gorm:"size:100;not null" json:"role"`
	Experience    string     `gorm:"size:50" json:"experience"`
	TopicsToFocus string     `gorm:"size:255" json:"topicsToFocus"`
	Description   string     `gorm:"type:text" json:"description"`
	Questions     []Question `gorm:"foreignKey:SessionID" json:"questions,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}
