// Package usecases holds the single-purpose section operations. Each use case
// receives its repository through the constructor and exposes Execute.
package usecases
