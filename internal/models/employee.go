package models

type Employee struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	// No default tag: GORM would omit a false zero value on Create and
	// the column default would silently activate the employee. Create
	// sites set the flag explicitly.
	IsActive bool `gorm:"not null" json:"isActive"`
}
