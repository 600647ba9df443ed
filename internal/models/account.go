package models

// Account is a storefront operator allowed to log in
type Account struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
}

// TableName overrides the table name for Account
func (Account) TableName() string {
	return "accounts"
}
