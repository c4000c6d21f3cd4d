package entity

// Base carries the generated integer primary key shared by every table.
type Base struct {
	ID int64 `db:"id"`
}
