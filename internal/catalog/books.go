package catalog

import "github.com/fjod/go_cart/storefront/internal/domain"

var seedBooks = []domain.Book{
	{
		ID:          "1",
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Price:       12.99,
		Discount:    0.2,
		CoverImage:  "/images/books/great-gatsby.jpg",
		Rating:      4.5,
		Genre:       "Classic",
		Description: "A portrait of the Jazz Age and the pursuit of the American dream on Long Island.",
		Pages:       180,
		Year:        1925,
	},
	{
		ID:          "2",
		Title:       "To Kill a Mockingbird",
		Author:      "Harper Lee",
		Price:       14.99,
		Discount:    0,
		CoverImage:  "/images/books/mockingbird.jpg",
		Rating:      5,
		Genre:       "Classic",
		Description: "A lawyer in a small Alabama town defends a black man accused of a crime he did not commit.",
		Pages:       281,
		Year:        1960,
	},
	{
		ID:          "3",
		Title:       "1984",
		Author:      "George Orwell",
		Price:       13.49,
		Discount:    0.15,
		CoverImage:  "/images/books/1984.jpg",
		Rating:      4.5,
		Genre:       "Dystopian",
		Description: "Winston Smith works for the Ministry of Truth in a state that watches everything.",
		Pages:       328,
		Year:        1949,
	},
	{
		ID:          "4",
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Price:       9.99,
		Discount:    0.1,
		CoverImage:  "/images/books/pride-prejudice.jpg",
		Rating:      4,
		Genre:       "Romance",
		Description: "Elizabeth Bennet and Mr. Darcy misjudge each other across a season of balls and visits.",
		Pages:       432,
		Year:        1813,
	},
	{
		ID:          "5",
		Title:       "Dune",
		Author:      "Frank Herbert",
		Price:       18.99,
		Discount:    0.25,
		CoverImage:  "/images/books/dune.jpg",
		Rating:      4.5,
		Genre:       "Science Fiction",
		Description: "Paul Atreides follows his family to Arrakis, the only source of the spice melange.",
		Pages:       688,
		Year:        1965,
	},
	{
		ID:          "6",
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Price:       11.99,
		Discount:    0,
		CoverImage:  "/images/books/hobbit.jpg",
		Rating:      5,
		Genre:       "Fantasy",
		Description: "Bilbo Baggins is swept into a quest to reclaim a dwarf kingdom from a dragon.",
		Pages:       310,
		Year:        1937,
	},
	{
		ID:          "7",
		Title:       "Sapiens: A Brief History of Humankind",
		Author:      "Yuval Noah Harari",
		Price:       22.5,
		Discount:    0.3,
		CoverImage:  "/images/books/sapiens.jpg",
		Rating:      4,
		Genre:       "History",
		Description: "How one species of ape came to rule the planet, from the cognitive revolution onward.",
		Pages:       443,
		Year:        2011,
	},
	{
		ID:          "8",
		Title:       "The Pragmatic Programmer",
		Author:      "Andrew Hunt & David Thomas",
		Price:       39.99,
		Discount:    0.05,
		CoverImage:  "/images/books/pragmatic-programmer.jpg",
		Rating:      4.5,
		Genre:       "Technology",
		Description: "Practical advice on the craft of building software that lasts.",
		Pages:       352,
		Year:        1999,
	},
}
