// Package calc evaluates the plotted function: user expressions through the
// expr-lang engine, or one of the fixed built-in functions.
package calc
