package book

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateBookRequest carries the multipart form fields for a new book.
// PublicationYear stays a string through validation so a non-numeric value
// is reported as a validation error instead of being coerced.
type CreateBookRequest struct {
	Title           string `form:"title"`
	Author          string `form:"author"`
	Description     string `form:"description"`
	Discipline      string `form:"discipline"`
	PublicationYear string `form:"publication_year"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 10000)),
		validation.Field(&r.Discipline,
			validation.In(
				DisciplineLibraryScience.String(),
				DisciplineMediaAndCommunication.String(),
				DisciplineHistory.String(),
				DisciplineArchaeology.String(),
			).Error("invalid discipline selected"),
		),
		validation.Field(&r.PublicationYear,
			is.Digit.Error("publication year must be numeric"),
			validation.Length(0, 4),
		),
	)
}

// Fields converts the validated request into entity fields.
func (r CreateBookRequest) Fields() (description *string, year *int, discipline Discipline) {
	if r.Description != "" {
		d := r.Description
		description = &d
	}
	if r.PublicationYear != "" {
		if y, err := strconv.Atoi(r.PublicationYear); err == nil {
			year = &y
		}
	}
	discipline = Discipline(r.Discipline)
	return description, year, discipline
}
