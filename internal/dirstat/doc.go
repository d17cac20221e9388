// Package dirstat provides directory statistics collection and tree rendering.
//
// It aggregates the size, file count and file-category breakdown of every
// directory bottom-up and prints the result as an indented tree, one line
// per directory, in case-insensitive name order.
package dirstat
