package database

import (
	"gorm.io/gorm"
)

// TestCase is db table
type TestCase struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	ProblemID      int64 `gorm:"index" validate:"required"`
	Input          string
	ExpectedOutput string
	IsHidden       bool
}

func (TestCase) TableName() string {
	return "test_cases"
}

func InsertTestCase(db *gorm.DB, testCase TestCase) (int64, error) {
	if err := validate.Struct(&testCase); err != nil {
		return 0, err
	}
	if err := db.Create(&testCase).Error; err != nil {
		return 0, err
	}
	return testCase.ID, nil
}

// FetchTestCases returns the test cases of the problem in insertion order.
func FetchTestCases(db *gorm.DB, problemID int64) ([]TestCase, error) {
	testCases := []TestCase{}
	if err := db.Where("problem_id = ?", problemID).Order("id").Find(&testCases).Error; err != nil {
		return nil, err
	}
	return testCases, nil
}
