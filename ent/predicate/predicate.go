// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Citation is the predicate function for citation builders.
type Citation func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ResearchData is the predicate function for researchdata builders.
type ResearchData func(*sql.Selector)

// ResearchQuery is the predicate function for researchquery builders.
type ResearchQuery func(*sql.Selector)

// ResearchSession is the predicate function for researchsession builders.
type ResearchSession func(*sql.Selector)

// SearchHistory is the predicate function for searchhistory builders.
type SearchHistory func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSetting is the predicate function for usersetting builders.
type UserSetting func(*sql.Selector)
