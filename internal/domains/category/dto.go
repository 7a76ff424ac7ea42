package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateEntryRequest carries the form fields for a curated entry. The
// category key comes from the route, the cover from the multipart payload.
type CreateEntryRequest struct {
	Title  string `form:"title"`
	Author string `form:"author"`
	Source string `form:"source"`
}

func (r CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Source,
			validation.Required.Error("source is required"),
			validation.Length(1, 2000),
		),
	)
}
