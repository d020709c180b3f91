package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/confsync/identiverse-calendar/internal/session"
)

const (
	AgendaURL = "https://identiverse.com/idv25/agenda/"
	UserAgent = "identiverse-calendar/1.0 (github.com/confsync/identiverse-calendar)"
	Timeout   = 30 * time.Second
)

// Scraper handles fetching and parsing the Identiverse agenda
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for the default agenda URL
func New() *Scraper {
	return NewWithURL(AgendaURL)
}

// NewWithURL creates a new Scraper for a specific agenda URL
func NewWithURL(url string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// FetchSessions fetches and parses all sessions from the agenda page
func (s *Scraper) FetchSessions() ([]session.RawSession, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseSessions(resp.Body)
}

// parseSessions extracts raw session records from agenda HTML
func (s *Scraper) parseSessions(r io.Reader) ([]session.RawSession, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	sessions := make([]session.RawSession, 0)

	// Strategy 1: sessions grouped under day headings
	doc.Find(".agenda-day").Each(func(i int, day *goquery.Selection) {
		dateLabel := firstText(day, ".agenda-day-title, h2, h3")
		day.Find(".agenda-session, .session").Each(func(j int, sel *goquery.Selection) {
			if rec, ok := parseSessionNode(sel, dateLabel); ok {
				sessions = append(sessions, rec)
			}
		})
	})

	// Strategy 2: flat session cards carrying their own date label
	if len(sessions) == 0 {
		doc.Find(".session-card, [data-session-id]").Each(func(i int, sel *goquery.Selection) {
			dateLabel := firstText(sel, ".session-date, .date")
			if dateLabel == "" {
				dateLabel, _ = sel.Attr("data-date")
			}
			if rec, ok := parseSessionNode(sel, dateLabel); ok {
				sessions = append(sessions, rec)
			}
		})
	}

	return dedupe(sessions), nil
}

// parseSessionNode extracts one raw session from a session element.
// Returns false when the node carries neither a title nor a time label.
func parseSessionNode(sel *goquery.Selection, dateLabel string) (session.RawSession, bool) {
	rec := session.RawSession{
		Date:        dateLabel,
		Time:        firstText(sel, ".session-time, .time"),
		Title:       firstText(sel, ".session-title, .title, h4"),
		Description: firstText(sel, ".session-description, .description, p"),
		Location:    firstText(sel, ".session-location, .location"),
		Type:        firstText(sel, ".session-type, .type"),
	}

	if rec.Title == "" && rec.Time == "" {
		return session.RawSession{}, false
	}

	sel.Find(".session-speaker, .speaker").Each(func(i int, sp *goquery.Selection) {
		if text := strings.TrimSpace(sp.Text()); text != "" {
			rec.Speakers = append(rec.Speakers, text)
		}
	})

	if href, ok := sel.Find(`a[href*="sessionID="]`).First().Attr("href"); ok {
		rec.DetailURL = href
	}
	if id, ok := sel.Attr("data-session-id"); ok {
		rec.SourceID = strings.TrimSpace(id)
	}

	return rec, true
}

// firstText returns the trimmed text of the first element matching any of
// the comma-separated selectors
func firstText(sel *goquery.Selection, selectors string) string {
	return strings.TrimSpace(sel.Find(selectors).First().Text())
}

// dedupe drops records repeating an earlier (title, date, time) triple.
// Agenda pages sometimes render the same session in multiple sections.
func dedupe(sessions []session.RawSession) []session.RawSession {
	seen := make(map[string]bool)
	unique := make([]session.RawSession, 0, len(sessions))
	for _, rec := range sessions {
		key := rec.Title + "|" + rec.Date + "|" + rec.Time
		if !seen[key] {
			seen[key] = true
			unique = append(unique, rec)
		}
	}
	return unique
}
