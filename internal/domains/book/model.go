package book

import (
	"time"
)

// Discipline is the closed taxonomy a book can belong to. Empty means
// uncategorized; anything else must be one of the four fixed keys.
type Discipline string

const (
	DisciplineLibraryScience        Discipline = "library_science"
	DisciplineMediaAndCommunication Discipline = "media_and_communication"
	DisciplineHistory               Discipline = "history"
	DisciplineArchaeology           Discipline = "archaeology"
)

// Disciplines returns the fixed keys in display order.
func Disciplines() []Discipline {
	return []Discipline{
		DisciplineLibraryScience,
		DisciplineMediaAndCommunication,
		DisciplineHistory,
		DisciplineArchaeology,
	}
}

func (d Discipline) IsValid() bool {
	switch d {
	case DisciplineLibraryScience, DisciplineMediaAndCommunication,
		DisciplineHistory, DisciplineArchaeology:
		return true
	}
	return false
}

func (d Discipline) String() string {
	return string(d)
}

// ParseDiscipline validates a raw form value. Empty is allowed and means
// uncategorized.
func ParseDiscipline(raw string) (Discipline, error) {
	if raw == "" {
		return "", nil
	}
	d := Discipline(raw)
	if !d.IsValid() {
		return "", ErrInvalidDiscipline
	}
	return d, nil
}

// Book is a catalog record. Records are immutable after creation except
// for deletion.
type Book struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Description     *string    `json:"description,omitempty"`
	PDFObject       string     `json:"pdf_object"`
	CoverObject     *string    `json:"cover_object,omitempty"`
	PublicationYear *int       `json:"publication_year,omitempty"`
	Discipline      Discipline `json:"discipline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// DeleteResult reports the independent outcomes of a book deletion. The
// record delete is authoritative; file removals are best-effort and a
// failed one downgrades the operation to a warning, never an error.
type DeleteResult struct {
	RecordDeleted bool `json:"record_deleted"`
	PDFRemoved    bool `json:"pdf_removed"`
	CoverRemoved  bool `json:"cover_removed"`
}

// Partial reports whether file cleanup was incomplete even though the
// record itself is gone.
func (r DeleteResult) Partial() bool {
	return r.RecordDeleted && (!r.PDFRemoved || !r.CoverRemoved)
}
