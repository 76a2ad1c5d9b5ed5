package models

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Post struct {
	ID       int64  `json:"id" db:"id"`
	Text     string `json:"text" db:"text"`
	AuthorID int64  `json:"author_id" db:"author_id"`
}
