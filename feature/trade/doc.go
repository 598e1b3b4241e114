// Package trade wraps the trade listing endpoints.
//
// Listings can be fetched in full or narrowed with a GearFilter, whose set
// fields become query parameters. A seller marks a listing as sold to a
// buyer identified by Steam ID.
package trade
