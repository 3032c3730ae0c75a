package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/gittags/gittags/internal/data"
	"github.com/gittags/gittags/pkg/gitapi"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

// AtomFeed is the document-level element of an Atom syndication feed
type AtomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Xmlns   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Author  AtomAuthor  `xml:"author"`
	Entries []AtomEntry `xml:"entry"`
}

type AtomAuthor struct {
	Name  string `xml:"name"`
	Email string `xml:"email,omitempty"`
}

type AtomLink struct {
	Href string `xml:"href,attr"`
}

type AtomEntry struct {
	ID      string      `xml:"id"`
	Title   string      `xml:"title"`
	Link    *AtomLink   `xml:"link,omitempty"`
	Updated string      `xml:"updated"`
	Author  *AtomAuthor `xml:"author,omitempty"`
	Summary string      `xml:"summary"`
}

// Document assembles the Atom feed for a repository's tags. Tags must
// already be sorted; commits maps every tag's hash to its cached commit.
func Document(repo gitapi.Repo, tags []gitapi.Tag, commits map[string]data.Commit, now time.Time) *AtomFeed {
	name := repo.String()
	baseLink := fmt.Sprintf("https://github.com/%s/commit", name)

	doc := &AtomFeed{
		Xmlns:   atomNamespace,
		Title:   fmt.Sprintf("Git Tags of %s", name),
		ID:      fmt.Sprintf("https://github.com/%s", name),
		Updated: now.UTC().Format(time.RFC3339),
		Author:  AtomAuthor{Name: repo.Owner},
	}

	for _, tag := range tags {
		commit := commits[tag.Commit.SHA]
		link := fmt.Sprintf("%s/%s", baseLink, commit.Sha)
		date := commit.Date.UTC().Format(time.RFC3339)

		doc.Entries = append(doc.Entries, AtomEntry{
			ID:      link,
			Title:   fmt.Sprintf("%s published %s", name, tag.Name),
			Link:    &AtomLink{Href: link},
			Updated: date,
			Author:  &AtomAuthor{Name: commit.AuthorName, Email: commit.AuthorEmail},
			Summary: fmt.Sprintf("by %s at %s:\n %s", commit.AuthorName, date, commit.Message),
		})
	}

	return doc
}

// ErrorDocument builds the degraded single-entry feed served when
// synthesis fails. Feed readers handle a well-formed error entry far
// better than an HTTP error status.
func ErrorDocument(repo gitapi.Repo, cause error, now time.Time) *AtomFeed {
	updated := now.UTC().Format(time.RFC3339)
	return &AtomFeed{
		Xmlns:   atomNamespace,
		Title:   "Github Tags Feed",
		ID:      fmt.Sprintf("https://github.com/%s", repo.String()),
		Updated: updated,
		Author:  AtomAuthor{Name: repo.Owner},
		Entries: []AtomEntry{
			{
				ID:      "error",
				Title:   "Error while generating feed:",
				Updated: updated,
				Summary: cause.Error(),
			},
		},
	}
}

// Render serializes an Atom document to its wire form
func Render(doc *AtomFeed) (string, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render feed: %v", err)
	}
	return xml.Header + string(body) + "\n", nil
}
