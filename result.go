package articlext

// ExtractResult is the output of a single extraction call.
type ExtractResult struct {
	ContentText  string
	ContentHTML  string
	CommentsText string
	CommentsHTML string
	Metadata     Metadata
	Images       []ImageData
}

// Metadata holds the resolved, cleaned document metadata. All fields
// are optional except Categories and Tags, which default to an empty
// slice rather than nil.
type Metadata struct {
	Title       string
	Author      string
	Date        string // ISO 8601 (RFC 3339) timestamp; a date-only source gets a zero time of day, so its original precision is not kept
	Description string
	SiteName    string
	URL         string
	Hostname    string
	Image       string
	Language    string
	License     string
	PageType    string
	Categories  []string
	Tags        []string
}

// ImageData describes one image retained from the kept content subtree.
type ImageData struct {
	Src      string
	Filename string
	Alt      string
	Caption  string
	IsHero   bool
}
