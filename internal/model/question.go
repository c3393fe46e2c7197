package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is one interview question bound to a session.
//
// Explanation and ExplanationTitle are either both empty (never generated) or
// both set. They are written exactly once by the explanation path and never
// overwritten through it.
//
// swagger:model Question
type Question struct {
	BaseModel
	SessionID        string     `gorm:"type:varchar(36);index;not null" json:"sessionId"`
	Question         string     `gorm:"type:text;not null" json:"question"`
	Answer           string     `gorm:"type:text" json:"answer"`
	Difficulty       Difficulty `gorm:"type:enum('easy','medium','hard');default:'medium'" json:"difficulty"`
	Note             string     `gorm:"type:text" json:"note"`
	IsPinned         bool       `gorm:"default:false" json:"isPinned"`
	Explanation      string     `gorm:"type:text" json:"explanation"`
	ExplanationTitle string     `gorm:"size:255" json:"explanationTitle"`
}

func (Question) TableName() string {
	return "questions"
}
