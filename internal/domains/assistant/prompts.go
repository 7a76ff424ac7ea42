package assistant

import (
	"fmt"
	"strings"

	"library-backend/internal/domains/book"
)

// Fixed generation knobs per call-site.
const (
	SearchMaxTokens     = 500
	AbstractMaxTokens   = 400
	AnnotationMaxTokens = 600
	Temperature         = 0.7
)

const noDescriptionPlaceholder = "No description available"

// BuildBooksContext enumerates the filtered books as the grounding block
// for the search persona. An empty set is stated explicitly and still sent
// upstream, never treated as a local error. Descriptions are included only
// when asked for, or when no advanced filter narrowed the set.
func BuildBooksContext(books []book.Book, criteria book.SearchCriteria) string {
	if len(books) == 0 {
		return "No books found matching your specific criteria.\n"
	}

	includeDescriptions := criteria.IncludeDescriptions || !criteria.HasAdvancedFilters()

	var b strings.Builder
	b.WriteString("Available books in the library matching your criteria:\n")
	for _, bk := range books {
		fmt.Fprintf(&b, "- %s by %s", bk.Title, bk.Author)
		if includeDescriptions && bk.Description != nil && *bk.Description != "" {
			fmt.Fprintf(&b, " (%s)", *bk.Description)
		}
		if bk.PublicationYear != nil {
			fmt.Fprintf(&b, " (Published: %d)", *bk.PublicationYear)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func SearchSystemPrompt(booksContext string) string {
	return fmt.Sprintf(`You are a helpful AI assistant for a digital library called "My Intelligent Library".
You help users find books, answer questions about literature, and provide reading recommendations.

%s
Please provide helpful, accurate, and engaging responses about books, reading, and literature.
If the user asks about specific books, check if they're available in the library above.
Keep responses concise but informative.`, booksContext)
}

// SearchUserPrompt is the raw query, augmented with an enumerated criteria
// block when any advanced filter is set and omitted entirely otherwise.
func SearchUserPrompt(req SearchRequest, criteria book.SearchCriteria) string {
	if !criteria.HasAdvancedFilters() {
		return req.Query
	}

	var b strings.Builder
	b.WriteString(req.Query)
	b.WriteString("\n\nAdditional search criteria:")
	if req.Author != "" {
		fmt.Fprintf(&b, "\n- Author: %s", req.Author)
	}
	if req.Category != "" {
		fmt.Fprintf(&b, "\n- Category/Subject: %s", req.Category)
	}
	if req.YearFrom != "" || req.YearTo != "" {
		yearRange := ""
		if req.YearFrom != "" {
			yearRange = "from " + req.YearFrom
		}
		if req.YearTo != "" {
			if yearRange != "" {
				yearRange += " "
			}
			yearRange += "to " + req.YearTo
		}
		fmt.Fprintf(&b, "\n- Publication year: %s", yearRange)
	}
	if req.IncludeDescriptions {
		b.WriteString("\n- Include full book descriptions in search")
	}
	return b.String()
}

func languageInstruction(lang string) string {
	if lang == "en" {
		return "in English"
	}
	return "in Arabic"
}

func AbstractSystemPrompt(lang string) string {
	return fmt.Sprintf(`You are an AI assistant that creates concise, informative abstracts for books.
Generate a well-structured abstract %s that summarizes the main themes, key points, and value of the book.
The abstract should be professional, clear, and between 150-300 words.
Focus on the book's main content, themes, and significance.`, languageInstruction(lang))
}

func AbstractUserPrompt(bk *book.Book) string {
	return fmt.Sprintf(`Please create an abstract for the following book:

Title: %s
Author: %s
Description: %s

Generate a comprehensive abstract that captures the essence of this book.`,
		bk.Title, bk.Author, bookDescription(bk))
}

func AnnotationSystemPrompt(lang string) string {
	return fmt.Sprintf(`You are an AI assistant that creates detailed annotations and marginal notes for books.
Generate comprehensive annotations %s that provide insights, explanations, and commentary on the book's content.
The annotations should be educational, insightful, and help readers understand key concepts, themes, and important details.
Focus on providing valuable context, explanations of complex ideas, and connections to broader themes.
Format the annotations as a structured list with clear headings and bullet points.`, languageInstruction(lang))
}

func AnnotationUserPrompt(bk *book.Book) string {
	return fmt.Sprintf(`Please create detailed annotations for the following book:

Title: %s
Author: %s
Description: %s

Generate comprehensive annotations that would help readers understand and appreciate this book better.
Include insights about themes, important concepts, historical context, and any other relevant information.`,
		bk.Title, bk.Author, bookDescription(bk))
}

func bookDescription(bk *book.Book) string {
	if bk.Description != nil && *bk.Description != "" {
		return *bk.Description
	}
	return noDescriptionPlaceholder
}
