// Package address decomposes free-text addresses into structured fields.
//
// Input comes from spreadsheet cells written by humans, so the parser works
// on the shape of the text rather than on a grammar. Commas separate
// segments; the number of segments decides how they are read:
//
//	"Name, Street 1, 12345 City"  -> name, street, postal code, city
//	"Street 1, 12345 City"        -> street, postal code, city
//	"Street 1, City"              -> street, city
//	"Name, City"                  -> name, city
//	"Street 1"                    -> street
//	"Name"                        -> name
//
// A digit marks a street, a leading group of exactly five digits marks a
// postal code. Fields that cannot be determined are left empty.
package address
