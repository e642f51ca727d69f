package voc

import "fmt"

// A FormatError reports an annotation file that could not be read or
// is missing a required field.
type FormatError struct {
	ImgID string
	Path  string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("annotation for %q (%s): %v", e.ImgID, e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// An UnknownCategoryError reports an object whose class name is not
// in the category table.
type UnknownCategoryError struct {
	ImgID string
	Name  string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("image %q: unknown category %q", e.ImgID, e.Name)
}

// A CategoryMismatchError reports a merge between indexes whose
// category tables differ in size.
type CategoryMismatchError struct {
	NumCats      int
	OtherNumCats int
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("cannot merge: %d categories vs %d", e.NumCats, e.OtherNumCats)
}
