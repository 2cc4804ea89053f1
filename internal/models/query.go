package models

// Column names a text column of the listings table that can be sorted on or
// searched.
type Column string

const (
	ColumnTitle      Column = "title"
	ColumnDatePosted Column = "date_posted"
	ColumnSalary     Column = "salary"
	ColumnLocation   Column = "location"
)

// ParseSortColumn maps a sort_by value onto a column. Unknown values fall
// back to date_posted instead of failing the request.
func ParseSortColumn(s string) Column {
	switch Column(s) {
	case ColumnTitle:
		return ColumnTitle
	case ColumnSalary:
		return ColumnSalary
	case ColumnLocation:
		return ColumnLocation
	case ColumnDatePosted:
		return ColumnDatePosted
	default:
		return ColumnDatePosted
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder only recognises "asc"; everything else sorts descending.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// JobFilter is the resolved form of a listing request. Empty TitleContains or
// LocationContains means no filter on that column.
type JobFilter struct {
	TitleContains    string
	LocationContains string
	SortBy           Column
	Order            SortOrder
}

func NewJobFilter(q, location, sortBy, order string) JobFilter {
	return JobFilter{
		TitleContains:    q,
		LocationContains: location,
		SortBy:           ParseSortColumn(sortBy),
		Order:            ParseSortOrder(order),
	}
}
