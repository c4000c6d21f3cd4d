package entity

import (
	"time"
)

// DateLayout is the wire format of release dates.
const DateLayout = "2006-01-02"

type Movie struct {
	Base
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"release_date"`
}
