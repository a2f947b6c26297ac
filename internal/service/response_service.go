package service

import "errors"

// ErrInvalidView is returned for a view mode other than grid or list.
var ErrInvalidView = errors.New("view must be grid or list")

// DirectoryQuery is one directory request: the raw inputs of a FilterState
// plus presentation choices.
type DirectoryQuery struct {
	Search   string   // case-insensitive substring of name or description
	Category string   // subcategory slug; "" lists everything
	Filters  []string // feature filter tags, OR-ed
	Selected string   // record id shown in the detail overlay
	View     string   // grid (default) | list
}
