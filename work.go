package ao3

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Selectors for the work page metadata block.
const (
	selectorAuthorLinks   = "h3.byline a[rel='author']"
	selectorByline        = "h3.byline"
	selectorTitle         = "h2.title"
	selectorWords         = "dd.words"
	selectorLanguage      = "dd.language"
	selectorRating        = "dd.rating a.tag"
	selectorCategory      = "dd.category a.tag"
	selectorFandom        = "dd.fandom a.tag"
	selectorRelationship  = "dd.relationship a.tag"
	selectorCharacter     = "dd.character a.tag"
	selectorFreeform      = "dd.freeform a.tag"
	selectorChapters      = "dd.chapters"
	selectorPublished     = "dd.published"
	selectorSummary       = ".summary blockquote.userstuff"
	anonymousBylineMarker = "Anonymous"
)

// authorHrefPattern matches author links such as /users/alice/pseuds/Alice.
var authorHrefPattern = regexp.MustCompile(`users/(.+)/pseuds/(.+)`)

// Author is a named author of a work.
type Author struct {
	Username string `json:"username"`
	Pseud    string `json:"pseud"`
}

// BylineKind classifies a work byline.
type BylineKind int

const (
	// BylineUnknown means the byline has no author links and is not the
	// anonymous marker. The archive does not document this case.
	BylineUnknown BylineKind = iota

	// BylineNamed means the byline lists one or more author links.
	BylineNamed

	// BylineAnonymous means the work was posted anonymously.
	BylineAnonymous
)

// String returns a readable name for the kind.
func (k BylineKind) String() string {
	switch k {
	case BylineNamed:
		return "named"
	case BylineAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Byline lists the authors of a work.
type Byline struct {
	Kind BylineKind

	// Authors is set only for BylineNamed, in DOM order.
	Authors []Author
}

// MarshalJSON encodes a named byline as its author list, an anonymous byline
// as the string "Anonymous" and an unknown byline as null.
func (b *Byline) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BylineNamed:
		return json.Marshal(b.Authors)
	case BylineAnonymous:
		return json.Marshal(anonymousBylineMarker)
	default:
		return []byte("null"), nil
	}
}

// WorkPage is a parsed work page.
type WorkPage struct {
	q DocumentQuery
}

// NewWorkPage wraps a parsed document as a work page.
func NewWorkPage(q DocumentQuery) *WorkPage {
	return &WorkPage{q: q}
}

// Byline returns the work's authors. An author link whose href is not of
// the form users/<username>/pseuds/<pseud>, or whose pseud is not validly
// percent-encoded, returns an EINVALID error.
func (p *WorkPage) Byline() (*Byline, error) {
	links := p.q.Select(selectorAuthorLinks)
	if len(links) == 0 {
		if strings.TrimSpace(text(p.q, selectorByline)) == anonymousBylineMarker {
			return &Byline{Kind: BylineAnonymous}, nil
		}
		return &Byline{Kind: BylineUnknown}, nil
	}

	authors := make([]Author, 0, len(links))
	for _, link := range links {
		href, _ := link.Attr("href")
		m := authorHrefPattern.FindStringSubmatch(href)
		if m == nil {
			return nil, Errorf(EINVALID, "unexpected author link %q", href)
		}
		pseud, err := decodeURI(m[2])
		if err != nil {
			return nil, err
		}
		authors = append(authors, Author{Username: m[1], Pseud: pseud})
	}
	return &Byline{Kind: BylineNamed, Authors: authors}, nil
}

// Title returns the trimmed work title.
func (p *WorkPage) Title() string {
	return strings.TrimSpace(text(p.q, selectorTitle))
}

// WordCount returns the word count. It reports false when the trimmed text
// is not a plain integer; "1,234" is not parsed.
func (p *WorkPage) WordCount() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text(p.q, selectorWords)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Language returns the trimmed work language.
func (p *WorkPage) Language() string {
	return strings.TrimSpace(text(p.q, selectorLanguage))
}

// Rating returns the rating tag text exactly as it appears, untrimmed.
func (p *WorkPage) Rating() string {
	return text(p.q, selectorRating)
}

// Category returns the category tags in DOM order, or nil when the work
// has none.
func (p *WorkPage) Category() []string {
	nodes := p.q.Select(selectorCategory)
	if len(nodes) == 0 {
		return nil
	}
	return trimmedTexts(nodes)
}

// Fandoms returns the fandom tags in DOM order. The result is never nil.
func (p *WorkPage) Fandoms() []string {
	return trimmedTexts(p.q.Select(selectorFandom))
}

// Relationships returns the relationship tags in DOM order. The result is never nil.
func (p *WorkPage) Relationships() []string {
	return trimmedTexts(p.q.Select(selectorRelationship))
}

// Characters returns the character tags in DOM order. The result is never nil.
func (p *WorkPage) Characters() []string {
	return trimmedTexts(p.q.Select(selectorCharacter))
}

// FreeformTags returns the additional tags in DOM order. The result is never nil.
func (p *WorkPage) FreeformTags() []string {
	return trimmedTexts(p.q.Select(selectorFreeform))
}

// Chapters returns the chapter progress, e.g. "3/10".
func (p *WorkPage) Chapters() string {
	return strings.TrimSpace(text(p.q, selectorChapters))
}

// Published returns the publication date as displayed, e.g. "2021-03-04".
func (p *WorkPage) Published() string {
	return strings.TrimSpace(text(p.q, selectorPublished))
}

// SummaryHTML returns the inner HTML of the work summary. It reports false
// when the work has no summary.
func (p *WorkPage) SummaryHTML() (string, bool, error) {
	nodes := p.q.Select(selectorSummary)
	if len(nodes) == 0 {
		return "", false, nil
	}
	html, err := nodes[0].HTML()
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(html), true, nil
}

func trimmedTexts(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = strings.TrimSpace(n.Text())
	}
	return out
}

// Work is the metadata record of a single work.
type Work struct {
	ID            string   `json:"id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Byline        *Byline  `json:"authors"`
	WordCount     *int     `json:"word_count"`
	Language      string   `json:"language"`
	Rating        string   `json:"rating"`
	Category      []string `json:"category"`
	Fandoms       []string `json:"fandoms"`
	Relationships []string `json:"relationships"`
	Characters    []string `json:"characters"`
	FreeformTags  []string `json:"freeform_tags"`
	Chapters      string   `json:"chapters"`
	Published     string   `json:"published"`

	// SummaryHTML is the raw summary; Summary is set by callers that
	// convert it, e.g. to Markdown.
	SummaryHTML string `json:"-"`
	Summary     string `json:"summary,omitempty"`
}

// ExtractWork runs every work page extractor and collects the results.
// WordCount is nil when the count cannot be parsed.
func ExtractWork(workID string, page *WorkPage) (*Work, error) {
	byline, err := page.Byline()
	if err != nil {
		return nil, err
	}

	summary, _, err := page.SummaryHTML()
	if err != nil {
		return nil, err
	}

	w := &Work{
		ID:            workID,
		URL:           WorkURL(WorkURLParams{WorkID: workID}),
		Title:         page.Title(),
		Byline:        byline,
		Language:      page.Language(),
		Rating:        page.Rating(),
		Category:      page.Category(),
		Fandoms:       page.Fandoms(),
		Relationships: page.Relationships(),
		Characters:    page.Characters(),
		FreeformTags:  page.FreeformTags(),
		Chapters:      page.Chapters(),
		Published:     page.Published(),
		SummaryHTML:   summary,
	}
	if n, ok := page.WordCount(); ok {
		w.WordCount = &n
	}
	return w, nil
}
