// Command seed creates a database with sample catalog data.
// Usage: go run cmd/seed/main.go [-db path/to/catalog.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mlefebvre/bookcatalog/internal/config"
	"github.com/mlefebvre/bookcatalog/internal/database"
	"github.com/mlefebvre/bookcatalog/internal/database/authors"
	"github.com/mlefebvre/bookcatalog/internal/database/books"
	"github.com/mlefebvre/bookcatalog/internal/database/tags"
)

type seedBook struct {
	Titlename       string
	PublicationYear int
	TagNames        []string
}

type seedAuthor struct {
	Firstname string
	Lastname  string
	Books     []seedBook
}

func sampleAuthors() []seedAuthor {
	return []seedAuthor{
		{
			Firstname: "John Ronald Reuel",
			Lastname:  "Tolkien",
			Books: []seedBook{
				{Titlename: "The Hobbit", PublicationYear: 1937, TagNames: []string{"Fantasy", "Adventure"}},
				{Titlename: "The Fellowship of the Ring", PublicationYear: 1954, TagNames: []string{"Fantasy", "Adventure"}},
				{Titlename: "The Two Towers", PublicationYear: 1954, TagNames: []string{"Fantasy", "Adventure"}},
				{Titlename: "The Return of the King", PublicationYear: 1955, TagNames: []string{"Fantasy", "Adventure"}},
			},
		},
		{
			Firstname: "Howard Phillips",
			Lastname:  "Lovecraft",
			Books: []seedBook{
				{Titlename: "The Call of Cthulhu", PublicationYear: 1928, TagNames: []string{"Horror"}},
				{Titlename: "At the Mountains of Madness", PublicationYear: 1936, TagNames: []string{"Horror", "Adventure"}},
			},
		},
	}
}

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the database file")
	flag.Parse()

	log.Printf("Seeding database at %s...", *dbPath)

	// Start from a fresh database
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	tagRepo := tags.NewRepository(db.DB)

	tagsByName := make(map[string]uint)
	for _, name := range []string{"Fantasy", "Horror", "Adventure"} {
		tag, err := tagRepo.CreateTag(name)
		if err != nil {
			log.Fatalf("Failed to create tag %s: %v", name, err)
		}
		tagsByName[name] = tag.ID
	}

	for _, a := range sampleAuthors() {
		author, err := authorRepo.CreateAuthor(a.Firstname, a.Lastname)
		if err != nil {
			log.Fatalf("Failed to create author %s %s: %v", a.Firstname, a.Lastname, err)
		}

		for _, b := range a.Books {
			book, err := bookRepo.CreateBook(b.Titlename, b.PublicationYear, author.ID)
			if err != nil {
				log.Fatalf("Failed to create book %s: %v", b.Titlename, err)
			}
			for _, tagName := range b.TagNames {
				if _, err := tagRepo.AttachTagToBook(book.ID, tagsByName[tagName]); err != nil {
					log.Printf("Failed to tag book %s with %s: %v", b.Titlename, tagName, err)
				}
			}
			log.Printf("Saved: %s (%d) by %s", b.Titlename, b.PublicationYear, a.Lastname)
		}
	}

	log.Println("Seeding complete")
}
