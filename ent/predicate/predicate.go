// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AiAnalysis is the predicate function for aianalysis builders.
type AiAnalysis func(*sql.Selector)

// ApiUsage is the predicate function for apiusage builders.
type ApiUsage func(*sql.Selector)

// JobLog is the predicate function for joblog builders.
type JobLog func(*sql.Selector)

// PainPoint is the predicate function for painpoint builders.
type PainPoint func(*sql.Selector)

// PainPointQuote is the predicate function for painpointquote builders.
type PainPointQuote func(*sql.Selector)

// Search is the predicate function for search builders.
type Search func(*sql.Selector)

// SearchEvent is the predicate function for searchevent builders.
type SearchEvent func(*sql.Selector)

// SearchSummary is the predicate function for searchsummary builders.
type SearchSummary func(*sql.Selector)
