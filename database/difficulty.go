package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProblemDifficulty is db table
type ProblemDifficulty struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	DifficultyName string `gorm:"uniqueIndex" validate:"notblank"`
}

func (ProblemDifficulty) TableName() string {
	return "problem_difficulties"
}

func FetchDifficultyID(db *gorm.DB, name string) (int64, error) {
	var difficulty ProblemDifficulty
	if err := db.Select("id").Where("difficulty_name = ?", name).Take(&difficulty).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotExist
	} else if err != nil {
		return 0, err
	}
	return difficulty.ID, nil
}

// SaveDifficulties inserts the difficulties that are not registered yet.
func SaveDifficulties(db *gorm.DB, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]ProblemDifficulty, 0, len(names))
	for _, name := range names {
		row := ProblemDifficulty{DifficultyName: name}
		if err := validate.Struct(&row); err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "difficulty_name"}},
		DoNothing: true,
	}).Create(&rows).Error
}
