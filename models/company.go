package models

// Company is a lookup record contacts point at. Companies are created
// administratively (or by the demo seed) and never deleted.
type Company struct {
	Id   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;unique"`
}
