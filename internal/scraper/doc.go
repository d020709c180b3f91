// Package scraper provides HTTP fetching and HTML parsing for the
// Identiverse agenda pages.
//
// The scraper fetches the public agenda page and extracts raw session
// records: date and time labels, title, description, location, speakers,
// session type, and the detail-page URL carrying the upstream session ID.
// Several selector strategies are tried in order so minor site redesigns
// degrade to fewer extracted fields instead of an empty result. All
// normalization of the extracted text happens downstream in the session
// package.
package scraper
