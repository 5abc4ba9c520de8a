// Package csvtable reads and writes spreadsheet rows stored as CSV files.
//
// Header names are lower-cased and trimmed so "Start", " start " and
// "START" address the same column. Both comma and semicolon separated
// files are accepted; the separator found on read is kept on write.
//
// Writing back the rows of a previous read only replaces the named cells.
// Header spelling, columns without a name and blank lines stay as they
// were, so the import can annotate a sheet without reshaping it.
package csvtable
