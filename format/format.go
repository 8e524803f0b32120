package format

import (
	"sync"
	"sync/atomic"
)

type options struct {
	trim          bool
	blankValues   bool
	blankColumns  bool
	tabAsSpace    bool
	spaceInColumn bool
}

// Option configures a Format.
type Option func(*options)

// Trim removes surrounding white space from every token, and skips blanks
// between fields.
func Trim(b bool) Option {
	return func(o *options) { o.trim = b }
}

// AcceptBlankValues converts empty tokens to the null-default of their
// type instead of failing.
func AcceptBlankValues(b bool) Option {
	return func(o *options) { o.blankValues = b }
}

// AcceptBlankColumns treats columns which are empty or blank up to the
// next delimiter as the null-default of their type.
func AcceptBlankColumns(b bool) Option {
	return func(o *options) { o.blankColumns = b }
}

// TabAsSpace lets tabulators count as blanks.
func TabAsSpace(b bool) Option {
	return func(o *options) { o.tabAsSpace = b }
}

// SpaceInColumn skips blanks between fields.
func SpaceInColumn(b bool) Option {
	return func(o *options) { o.spaceInColumn = b }
}

// Format is a record parser for a single pattern.
//
// Properties and the pattern have to be set before the first call to Parse.
// After that, a Format is immutable and may be used concurrently.
type Format struct {
	pattern  string
	tokens   []token
	fields   []string
	opts     options
	compiled bool
	mu       sync.Mutex // guards the fields above until frozen is set
	frozen   int32      // set by the first Parse
}

// New creates a Format without a pattern.
func New(opts ...Option) *Format {
	f := &Format{}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

// MustCompile creates a Format for pattern. It panics if the pattern is
// invalid. It simplifies initialization of global variables holding formats.
func MustCompile(pattern string, opts ...Option) *Format {
	f := New(opts...)
	if _, err := f.SetFormat(pattern); err != nil {
		panic(`format: MustCompile(` + pattern + `): ` + err.Error())
	}
	return f
}

func (f *Format) set(opt Option) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if atomic.LoadInt32(&f.frozen) != 0 {
		return ErrFrozen
	}
	opt(&f.opts)
	return nil
}

// SetTrim switches trimming of tokens.
func (f *Format) SetTrim(b bool) error { return f.set(Trim(b)) }

// SetAcceptBlankValues switches acceptance of empty tokens.
func (f *Format) SetAcceptBlankValues(b bool) error { return f.set(AcceptBlankValues(b)) }

// SetAcceptBlankColumns switches detection of empty columns.
func (f *Format) SetAcceptBlankColumns(b bool) error { return f.set(AcceptBlankColumns(b)) }

// SetSpaceTab switches treatment of tabulators as blanks.
func (f *Format) SetSpaceTab(b bool) error { return f.set(TabAsSpace(b)) }

// SetSpaceInColumn switches skipping of blanks between fields.
func (f *Format) SetSpaceInColumn(b bool) error { return f.set(SpaceInColumn(b)) }

// SetFormat compiles a pattern. A Format accepts a pattern only once.
// SetFormat returns the type names of the fields, see IsFormat.
func (f *Format) SetFormat(pattern string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.compiled {
		return nil, ErrFormatAlreadySet
	}
	tokens, fields, err := compile(pattern)
	if err != nil {
		tracer().Errorf("invalid pattern %q: %v", pattern, err)
		return nil, err
	}
	f.pattern, f.tokens, f.fields = pattern, tokens, fields
	f.compiled = true
	tracer().Infof("format %q with fields %v", pattern, fields)
	return fields, nil
}

// Pattern returns the pattern of f, or "" if none is set.
func (f *Format) Pattern() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pattern
}

// Fields returns the type names of the fields of the pattern.
func (f *Format) Fields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields := make([]string, len(f.fields))
	copy(fields, f.fields)
	return fields
}

// Parse parses content according to the pattern. It returns a value for
// every field of the pattern, except for fields of an optional section
// which the content does not reach. On failure no values are returned;
// the error is a *FormatError or ErrNoFormat.
func (f *Format) Parse(content string) (Record, error) {
	if err := f.freeze(); err != nil {
		return nil, err
	}
	ctx := newParseContext(f, content)
	if err := ctx.run(); err != nil {
		tracer().Errorf("parsing %q: %v", content, err)
		return nil, err
	}
	return ctx.record(), nil
}

// freeze makes f immutable. Once frozen, options and tokens are read
// without locking.
func (f *Format) freeze() error {
	if atomic.LoadInt32(&f.frozen) != 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.compiled {
		return ErrNoFormat
	}
	atomic.StoreInt32(&f.frozen, 1)
	return nil
}
