package articlext

// Options configures a single extraction call. The zero value is not the
// documented default; DefaultOptions returns that, and every extraction
// call starts from it before applying its Option list.
type Options struct {
	IncludeComments        bool
	IncludeTables          bool
	IncludeImages          bool
	IncludeLinks           bool
	FavorPrecision         bool
	FavorRecall            bool
	UseReadabilityFallback bool
	Deduplicate            bool
	TargetLanguage         string
	URL                    string
	AuthorBlacklist        []string
	MaxTreeDepth           int
}

// Option mutates Options. Constructed with the With* functions below.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() *Options {
	return &Options{
		IncludeTables:          true,
		UseReadabilityFallback: true,
		Deduplicate:            true,
		MaxTreeDepth:           155,
	}
}

// resolve builds an Options from defaults plus the given option list,
// then settles the favor_precision/favor_recall conflict (precision wins).
func resolve(opts []Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.FavorPrecision && o.FavorRecall {
		o.FavorRecall = false
	}
	return o
}

// WithIncludeComments keeps the comments subtree in the output.
func WithIncludeComments() Option {
	return func(o *Options) { o.IncludeComments = true }
}

// WithoutTables drops <table> subtrees from the output.
func WithoutTables() Option {
	return func(o *Options) { o.IncludeTables = false }
}

// WithIncludeImages collects and preserves <img> elements as ImageData.
func WithIncludeImages() Option {
	return func(o *Options) { o.IncludeImages = true }
}

// WithIncludeLinks preserves <a href> as links instead of flattening them
// to plain text.
func WithIncludeLinks() Option {
	return func(o *Options) { o.IncludeLinks = true }
}

// WithFavorPrecision applies stricter inclusion thresholds, dropping
// borderline blocks. Takes precedence over WithFavorRecall if both are set.
func WithFavorPrecision() Option {
	return func(o *Options) { o.FavorPrecision = true }
}

// WithFavorRecall applies looser inclusion thresholds, keeping borderline
// blocks.
func WithFavorRecall() Option {
	return func(o *Options) { o.FavorRecall = true }
}

// WithoutReadabilityFallback disables the density-based fallback extractor
// on short primary output.
func WithoutReadabilityFallback() Option {
	return func(o *Options) { o.UseReadabilityFallback = false }
}

// WithoutDeduplication disables repeated-block deduplication.
func WithoutDeduplication() Option {
	return func(o *Options) { o.Deduplicate = false }
}

// WithTargetLanguage rejects documents whose declared language differs
// from lang (a primary subtag, e.g. "en").
func WithTargetLanguage(lang string) Option {
	return func(o *Options) { o.TargetLanguage = lang }
}

// WithURL seeds the document's canonical URL, used to derive hostname
// and to resolve relative image URLs when the document itself
// declares none.
func WithURL(url string) Option {
	return func(o *Options) { o.URL = url }
}

// WithAuthorBlacklist rejects author values that exactly match one of
// the given strings.
func WithAuthorBlacklist(authors ...string) Option {
	return func(o *Options) { o.AuthorBlacklist = authors }
}

// WithMaxTreeDepth bounds traversal depth. Traversals that would exceed
// it return whatever has been collected so far rather than failing.
func WithMaxTreeDepth(depth int) Option {
	return func(o *Options) { o.MaxTreeDepth = depth }
}
