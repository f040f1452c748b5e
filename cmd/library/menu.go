package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	bookmodel "library-manager/internal/domains/book/model"
	readermodel "library-manager/internal/domains/reader/model"
	"library-manager/pkg/container"
)

const menuText = `
=== Library Manager ===
 1) list books          6) list readers
 2) search books        7) search readers
 3) add book            8) add reader
 4) remove book         9) remove reader
 5) borrow book        10) return book
11) reserve book       12) extend loan
 q) quit
`

// runMenu is the interactive front end. Domain errors are printed as
// messages and never end the loop.
func runMenu(c *container.Container, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menuText, "choice: ")
		if !sc.Scan() {
			return sc.Err()
		}

		var err error
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			err = listBooks(c, out)
		case "2":
			err = searchBooks(c, sc, out)
		case "3":
			err = addBook(c, sc, out)
		case "4":
			err = withID(sc, out, "book id: ", c.Books.RemoveBook)
		case "5":
			err = lendingOp(sc, out, func(readerID, bookID int) error {
				return c.Lending.Borrow(readerID, bookID)
			})
		case "6":
			err = listReaders(c, out)
		case "7":
			err = searchReaders(c, sc, out)
		case "8":
			err = addReader(c, sc, out)
		case "9":
			err = withID(sc, out, "reader id: ", c.Readers.RemoveReader)
		case "10":
			err = lendingOp(sc, out, func(readerID, bookID int) error {
				fee, err := c.Lending.Return(readerID, bookID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "returned, late fee: %s\n", fee)
				return nil
			})
		case "11":
			err = lendingOp(sc, out, func(readerID, bookID int) error {
				until, err := c.Lending.Reserve(readerID, bookID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "reserved until %s\n", until.Format("2006-01-02"))
				return nil
			})
		case "12":
			err = lendingOp(sc, out, func(readerID, bookID int) error {
				due, err := c.Lending.Extend(readerID, bookID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "extended, new return date: %s\n", due.Format("2006-01-02"))
				return nil
			})
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "unknown choice")
			continue
		}

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func listBooks(c *container.Container, out io.Writer) error {
	books, err := c.Books.ListBooks()
	if err != nil {
		return err
	}
	printBooks(out, books)
	return nil
}

func searchBooks(c *container.Container, sc *bufio.Scanner, out io.Writer) error {
	q, err := prompt(sc, out, "query: ")
	if err != nil {
		return err
	}
	books, err := c.Books.SearchBooks(q)
	if err != nil {
		return err
	}
	printBooks(out, books)
	return nil
}

func addBook(c *container.Container, sc *bufio.Scanner, out io.Writer) error {
	title, err := prompt(sc, out, "title: ")
	if err != nil {
		return err
	}
	author, err := prompt(sc, out, "author: ")
	if err != nil {
		return err
	}
	isbn, err := prompt(sc, out, "isbn: ")
	if err != nil {
		return err
	}
	publisher, err := prompt(sc, out, "publisher: ")
	if err != nil {
		return err
	}
	pagesStr, err := prompt(sc, out, "pages: ")
	if err != nil {
		return err
	}
	pages, err := strconv.Atoi(pagesStr)
	if err != nil {
		return fmt.Errorf("page count must be a number")
	}

	b, err := bookmodel.NewBook(title, author, isbn, publisher, pages)
	if err != nil {
		return err
	}
	if err := c.Books.AddBook(b); err != nil {
		return err
	}
	fmt.Fprintf(out, "added book #%d\n", b.ID)
	return nil
}

func listReaders(c *container.Container, out io.Writer) error {
	readers, err := c.Readers.ListReaders()
	if err != nil {
		return err
	}
	printReaders(out, readers)
	return nil
}

func searchReaders(c *container.Container, sc *bufio.Scanner, out io.Writer) error {
	q, err := prompt(sc, out, "query: ")
	if err != nil {
		return err
	}
	readers, err := c.Readers.SearchReaders(q)
	if err != nil {
		return err
	}
	printReaders(out, readers)
	return nil
}

func addReader(c *container.Container, sc *bufio.Scanner, out io.Writer) error {
	name, err := prompt(sc, out, "name: ")
	if err != nil {
		return err
	}
	surname, err := prompt(sc, out, "surname: ")
	if err != nil {
		return err
	}
	phone, err := prompt(sc, out, "phone (9 digits): ")
	if err != nil {
		return err
	}

	r, err := readermodel.NewReader(name, surname, phone, readermodel.Address{})
	if err != nil {
		return err
	}
	if err := c.Readers.AddReader(r); err != nil {
		return err
	}
	fmt.Fprintf(out, "added reader #%d\n", r.ID)
	return nil
}

func lendingOp(sc *bufio.Scanner, out io.Writer, op func(readerID, bookID int) error) error {
	readerID, err := promptID(sc, out, "reader id: ")
	if err != nil {
		return err
	}
	bookID, err := promptID(sc, out, "book id: ")
	if err != nil {
		return err
	}
	return op(readerID, bookID)
}

func withID(sc *bufio.Scanner, out io.Writer, label string, op func(id int) error) error {
	id, err := promptID(sc, out, label)
	if err != nil {
		return err
	}
	return op(id)
}

func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

func promptID(sc *bufio.Scanner, out io.Writer, label string) (int, error) {
	s, err := prompt(sc, out, label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("id must be a number")
	}
	return id, nil
}

func printBooks(out io.Writer, books []bookmodel.Book) {
	if len(books) == 0 {
		fmt.Fprintln(out, "no books")
		return
	}
	for _, b := range books {
		status := "available"
		if b.Lent {
			status = fmt.Sprintf("lent to reader #%d, due %s", *b.LentTo, b.ReturnDate.Format("2006-01-02"))
		}
		if b.Reserved {
			status += fmt.Sprintf(", reserved by reader #%d", *b.ReservedBy)
		}
		fmt.Fprintf(out, "#%d %s - %s\n", b.ID, b, status)
	}
}

func printReaders(out io.Writer, readers []readermodel.Reader) {
	if len(readers) == 0 {
		fmt.Fprintln(out, "no readers")
		return
	}
	for _, r := range readers {
		fmt.Fprintf(out, "#%d %s, %d book(s) on loan\n", r.ID, r, len(r.BorrowedBooks))
	}
}
