// models/content.go - Course content hierarchy (language -> unit -> lesson -> exercise -> option)
package models

import (
	"time"
)

// Language is a catalog entity, read-only for end users.
type Language struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"uniqueIndex;not null;size:10"`
	Name       string    `json:"name" gorm:"not null;size:100"`
	NativeName string    `json:"native_name" gorm:"size:100"`
	Flag       string    `json:"flag" gorm:"size:10"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Units      []Unit    `json:"units,omitempty" gorm:"foreignKey:LanguageID"`
}

type Unit struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	LanguageID  uint      `json:"language_id" gorm:"not null;index"`
	Language    *Language `json:"language,omitempty" gorm:"foreignKey:LanguageID"`
	Title       string    `json:"title" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	Order       int       `json:"order" gorm:"column:position;not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Lessons     []Lesson  `json:"lessons,omitempty" gorm:"foreignKey:UnitID"`
}

type Lesson struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UnitID    uint       `json:"unit_id" gorm:"not null;index"`
	Unit      *Unit      `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Title     string     `json:"title" gorm:"not null;size:100"`
	Order     int        `json:"order" gorm:"column:position;not null;default:0"`
	XPReward  int        `json:"xp_reward" gorm:"default:10"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Exercises []Exercise `json:"exercises,omitempty" gorm:"foreignKey:LessonID"`
	Story     *Story     `json:"story,omitempty" gorm:"foreignKey:LessonID"`
}

type Exercise struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	LessonID      uint             `json:"lesson_id" gorm:"not null;index"`
	Lesson        *Lesson          `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
	Type          string           `json:"type" gorm:"not null;size:30"` // select, translate, listen, match
	Prompt        string           `json:"prompt" gorm:"not null;type:text"`
	CorrectAnswer string           `json:"correct_answer" gorm:"size:500"`
	Order         int              `json:"order" gorm:"column:position;not null;default:0"`
	CreatedAt     time.Time        `json:"created_at"`
	Options       []ExerciseOption `json:"options,omitempty" gorm:"foreignKey:ExerciseID"`
}

type ExerciseOption struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ExerciseID uint      `json:"exercise_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null;size:500"`
	IsCorrect  bool      `json:"is_correct" gorm:"default:false"`
	Order      int       `json:"order" gorm:"column:position;not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
}

// Story is a narrative exercise attached 1:1 to a lesson.
type Story struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	LessonID  uint            `json:"lesson_id" gorm:"uniqueIndex;not null"`
	Title     string          `json:"title" gorm:"not null;size:100"`
	Body      string          `json:"body" gorm:"type:text"`
	CreatedAt time.Time       `json:"created_at"`
	Questions []StoryQuestion `json:"questions,omitempty" gorm:"foreignKey:StoryID"`
}

type StoryQuestion struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	StoryID   uint          `json:"story_id" gorm:"not null;index"`
	Text      string        `json:"text" gorm:"not null;type:text"`
	Order     int           `json:"order" gorm:"column:position;not null;default:0"`
	CreatedAt time.Time     `json:"created_at"`
	Options   []StoryOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

type StoryOption struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null;size:500"`
	IsCorrect  bool      `json:"is_correct" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Language) TableName() string {
	return "languages"
}

func (Unit) TableName() string {
	return "units"
}

func (Lesson) TableName() string {
	return "lessons"
}

func (Exercise) TableName() string {
	return "exercises"
}

func (ExerciseOption) TableName() string {
	return "exercise_options"
}

func (Story) TableName() string {
	return "stories"
}

func (StoryQuestion) TableName() string {
	return "story_questions"
}

func (StoryOption) TableName() string {
	return "story_options"
}
