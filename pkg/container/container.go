package container

import (
	"library-manager/internal/config"

	bookRepo "library-manager/internal/domains/book/repository"
	bookService "library-manager/internal/domains/book/service"
	"library-manager/internal/domains/lending"
	readerRepo "library-manager/internal/domains/reader/repository"
	readerService "library-manager/internal/domains/reader/service"
)

// Container holds all application dependencies, wired once at startup.
// Repositories and services are stateless singletons; all state lives
// in the xlsx tables.
type Container struct {
	Config *config.Config

	BookRepo   bookRepo.RepositoryInterface
	ReaderRepo readerRepo.RepositoryInterface

	Books   bookService.ServiceInterface
	Readers readerService.ServiceInterface
	Lending lending.ServiceInterface
}

// Build constructs the dependency graph: config -> repositories ->
// services.
func Build(cfg *config.Config) *Container {
	books := bookRepo.NewExcelRepository(cfg.Data.BooksPath())
	readers := readerRepo.NewExcelRepository(cfg.Data.ReadersPath())

	return &Container{
		Config:     cfg,
		BookRepo:   books,
		ReaderRepo: readers,
		Books:      bookService.NewService(books, readers),
		Readers:    readerService.NewService(readers, books),
		Lending:    lending.NewService(books, readers),
	}
}
