package domain

import "errors"

var ErrEmptyDocument = errors.New("document contains no extractable text")
var ErrUnsupportedDocument = errors.New("unsupported document type")
var ErrObjectNotFound = errors.New("stored object not found")
var ErrObjectExists = errors.New("stored object already exists")
var ErrInvalidSignedURL = errors.New("signed url is invalid or expired")

// ErrUpstream marks failures of external providers (LLM, web search) so the
// API can answer 502 instead of a generic 500.
var ErrUpstream = errors.New("upstream service failed")

// ParsedContractor holds the contractor form fields an extraction produced.
// Empty fields mean the document did not yield that information.
type ParsedContractor struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

// ParsedKeywords groups extracted keyword labels by category. The JSON field
// names match the wire contract of the parse endpoint, including the spaced
// "job titles" key the frontend expects.
type ParsedKeywords struct {
	Skills         []string `json:"skills"`
	Industries     []string `json:"industries"`
	Certifications []string `json:"certifications"`
	Companies      []string `json:"companies"`
	JobTitles      []string `json:"job titles"`
}

// ParsedResume is the full result of running a resume through extraction.
type ParsedResume struct {
	Contractor ParsedContractor `json:"contractor"`
	Keywords   ParsedKeywords   `json:"keywords"`
}

// Empty reports whether extraction yielded nothing usable. Callers treat this
// as a soft failure prompting manual entry, not a hard error.
func (p *ParsedResume) Empty() bool {
	if p == nil {
		return true
	}
	if p.Contractor != (ParsedContractor{}) {
		return false
	}
	k := p.Keywords
	return len(k.Skills)+len(k.Industries)+len(k.Certifications)+len(k.Companies)+len(k.JobTitles) == 0
}
