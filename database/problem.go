package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Problem is db table
type Problem struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	Title        string
	Description  string
	DifficultyID int64              `validate:"required"`
	Difficulty   *ProblemDifficulty `gorm:"foreignKey:DifficultyID" validate:"-"`
	CreatedBy    *uuid.UUID         `gorm:"type:uuid"`
	CreatedAt    time.Time
}

func (Problem) TableName() string {
	return "problems"
}

// InsertProblem creates a problem row and returns its generated id.
func InsertProblem(db *gorm.DB, problem Problem) (int64, error) {
	if problem.ID != 0 {
		return 0, errors.New("problem id must not be set")
	}
	if err := validate.Struct(&problem); err != nil {
		return 0, err
	}
	if err := db.Omit("Difficulty").Create(&problem).Error; err != nil {
		return 0, err
	}
	return problem.ID, nil
}

func FetchProblem(db *gorm.DB, id int64) (*Problem, error) {
	var problem Problem
	if err := db.Where("id = ?", id).Take(&problem).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	} else if err != nil {
		return nil, err
	}
	return &problem, nil
}

func CountProblems(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&Problem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
