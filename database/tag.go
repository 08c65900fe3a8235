package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tag is db table
type Tag struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	TagName string `gorm:"uniqueIndex" validate:"notblank"`
}

func (Tag) TableName() string {
	return "tags"
}

// ProblemTag links a problem to a tag
type ProblemTag struct {
	ProblemID int64 `gorm:"primaryKey;autoIncrement:false" validate:"required"`
	TagID     int64 `gorm:"primaryKey;autoIncrement:false" validate:"required"`
}

func (ProblemTag) TableName() string {
	return "problem_tags"
}

func FetchTagID(db *gorm.DB, name string) (int64, error) {
	var tag Tag
	if err := db.Select("id").Where("tag_name = ?", name).Take(&tag).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotExist
	} else if err != nil {
		return 0, err
	}
	return tag.ID, nil
}

func InsertProblemTag(db *gorm.DB, problemID, tagID int64) error {
	link := ProblemTag{ProblemID: problemID, TagID: tagID}
	if err := validate.Struct(&link); err != nil {
		return err
	}
	return db.Create(&link).Error
}

func FetchProblemTagIDs(db *gorm.DB, problemID int64) ([]int64, error) {
	ids := []int64{}
	if err := db.Model(&ProblemTag{}).Where("problem_id = ?", problemID).Order("tag_id").Pluck("tag_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveTags inserts the tags that are not registered yet.
func SaveTags(db *gorm.DB, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]Tag, 0, len(names))
	for _, name := range names {
		row := Tag{TagName: name}
		if err := validate.Struct(&row); err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tag_name"}},
		DoNothing: true,
	}).Create(&rows).Error
}
