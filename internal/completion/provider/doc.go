// Package provider implements completion candidate sources. All
// providers satisfy completion.Provider and operate on the request's
// buffer snapshot; none touch live editor state.
package provider
