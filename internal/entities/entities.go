package entities

import "time"

// Author writes zero or more books.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Firstname string    `gorm:"size:50" json:"firstname"`
	Lastname  string    `gorm:"index;size:50" json:"lastname"`
	Books     []Book    `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book belongs to exactly one author and carries any number of tags.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Titlename       string    `gorm:"index;size:50" json:"titlename"`
	PublicationYear int       `json:"publication_year"`
	AuthorID        uint      `gorm:"index" json:"author_id"`
	Author          *Author   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags            []Tag     `gorm:"many2many:book_tags;" json:"tags,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Tag names are unique across the catalog.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:50" json:"name"`
	Books     []Book    `gorm:"many2many:book_tags;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// User holds credentials. Password stores the bcrypt hash and is never
// serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `gorm:"size:100" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is written by one user on one book. Only its creator may
// mutate it.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	BookID    uint      `gorm:"index" json:"book_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rating is a 0-5 score given by one user to one book. Only its creator
// may mutate it.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     int       `json:"value"`
	BookID    uint      `gorm:"index" json:"book_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (Tag) TableName() string {
	return "tags"
}

func (User) TableName() string {
	return "users"
}

func (Comment) TableName() string {
	return "comments"
}

func (Rating) TableName() string {
	return "ratings"
}
