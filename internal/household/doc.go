// Package household clusters person records into households.
//
// Persons are sorted by (city, street, last name) so that members of one
// dwelling become adjacent, then a single forward pass cuts the sorted list
// into households. The cut is taken when the key changes and more than one
// record has accumulated. A lone record is not closed on its own: it stays
// in the buffer and the following run joins it, so a single person sorted
// before another household ends up listed with that household.
package household
