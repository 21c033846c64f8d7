package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout GenoBrowse and its
	associated services.
*/
type ColumnKind string
type FilterKind string
type SortOrder string
