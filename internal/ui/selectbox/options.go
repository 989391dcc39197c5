package selectbox

import (
	"log/slog"

	"selectbox/internal/domain"
	"selectbox/internal/ui/idgen"
	"selectbox/internal/ui/services/events"
	"selectbox/internal/ui/services/expansion"
	"selectbox/internal/ui/services/filter"
	"selectbox/internal/ui/services/selection"
	"selectbox/internal/ui/views"
)

// DefaultSelectAllText labels the select-all row of multiple selects
const DefaultSelectAllText = "Selecionar todos"

// DefaultWidth is the frame width when no width attribute is given
const DefaultWidth = 32

// Option configures a Model
type Option func(*config)

type config struct {
	typ           domain.Type
	options       []domain.Option
	value         any
	onChange      func(any)
	selectAllText string
	placeholder   string
	label         string
	id            string
	ids           idgen.Provider
	attrs         views.Attributes
	bus           events.EventBus
	matcher       filter.Mode
	selectAll     selection.SelectAllPolicy
	allSelected   selection.AllSelectedCheck
	escape        expansion.EscapePolicy
	styles        *views.Styles
	maxRows       int
	logger        *slog.Logger
}

func defaultConfig() *config {
	return &config{
		typ:           domain.TypeSingle,
		selectAllText: DefaultSelectAllText,
		matcher:       filter.ModeSubstring,
	}
}

// WithType sets single or multiple selection
func WithType(t domain.Type) Option {
	return func(c *config) { c.typ = t }
}

// WithOptions sets the selectable options
func WithOptions(opts []domain.Option) Option {
	return func(c *config) { c.options = opts }
}

// WithValue seeds the initial selection
func WithValue(v any) Option {
	return func(c *config) { c.value = v }
}

// WithOnChange sets the function notified with every new value: the raw
// scalar for single selects, an ordered []any for multiple selects
func WithOnChange(fn func(any)) Option {
	return func(c *config) { c.onChange = fn }
}

// WithSelectAllText labels the select-all row. An empty text hides it.
func WithSelectAllText(text string) Option {
	return func(c *config) { c.selectAllText = text }
}

func WithPlaceholder(text string) Option {
	return func(c *config) { c.placeholder = text }
}

func WithLabel(text string) Option {
	return func(c *config) { c.label = text }
}

// WithID sets the widget id instead of generating one
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

// WithIDProvider sets where generated ids come from
func WithIDProvider(p idgen.Provider) Option {
	return func(c *config) { c.ids = p }
}

// WithAttributes passes presentation attributes through to the frame
func WithAttributes(attrs views.Attributes) Option {
	return func(c *config) { c.attrs = attrs }
}

// WithBus publishes the widget's service events on bus
func WithBus(bus events.EventBus) Option {
	return func(c *config) { c.bus = bus }
}

// WithMatcher picks substring or fuzzy filtering
func WithMatcher(m filter.Mode) Option {
	return func(c *config) { c.matcher = m }
}

func WithSelectAllPolicy(p selection.SelectAllPolicy) Option {
	return func(c *config) { c.selectAll = p }
}

func WithAllSelectedCheck(check selection.AllSelectedCheck) Option {
	return func(c *config) { c.allSelected = check }
}

func WithEscapePolicy(p expansion.EscapePolicy) Option {
	return func(c *config) { c.escape = p }
}

func WithStyles(s *views.Styles) Option {
	return func(c *config) { c.styles = s }
}

// WithMaxRows limits how many rows are shown at once; 0 shows all
func WithMaxRows(n int) Option {
	return func(c *config) { c.maxRows = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
