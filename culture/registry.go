package culture

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	om "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"spanparse/log"
	"spanparse/oops"
	"spanparse/timespan"
)

type cultureFile struct {
	Cultures []cultureEntry `yaml:"cultures"`
}

type cultureEntry struct {
	Name             string `yaml:"name"`
	DecimalSeparator string `yaml:"decimal_separator"`
	PositivePattern  string `yaml:"positive_pattern"`
	NegativePattern  string `yaml:"negative_pattern"`
}

// Registry holds cultures in the order they were registered.
type Registry struct {
	mu       sync.RWMutex
	cultures *om.OrderedMap[string, *Culture]
	matcher  language.Matcher
	literals *lru.Cache[literalsKey, timespan.FormatLiterals]
}

const literalsCacheSize = 256

func NewRegistry() *Registry {
	cache, err := lru.New[literalsKey, timespan.FormatLiterals](literalsCacheSize)
	if err != nil {
		panic(err)
	}
	return &Registry{
		mu:       sync.RWMutex{},
		cultures: om.New[string, *Culture](),
		matcher:  nil,
		literals: cache,
	}
}

//go:embed cultures.yaml
var embeddedCultures []byte

var defaultRegistry = mustLoadEmbedded()

func mustLoadEmbedded() *Registry {
	registry := NewRegistry()
	if err := registry.Load(bytes.NewReader(embeddedCultures)); err != nil {
		panic(err)
	}
	return registry
}

func Default() *Registry {
	return defaultRegistry
}

func cultureKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load reads a YAML culture list and adds or replaces its cultures. Entries
// without patterns get the standard ones around their decimal separator.
func (r *Registry) Load(reader io.Reader) error {
	var file cultureFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return oops.Wrapf(err, "decode cultures")
	}

	cultures := make([]*Culture, 0, len(file.Cultures))
	for _, entry := range file.Cultures {
		c, err := entry.culture()
		if err != nil {
			return err
		}
		cultures = append(cultures, c)
	}

	for _, c := range cultures {
		r.Register(c)
	}
	return nil
}

func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return oops.Wrap(err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return oops.Wrapf(err, "load %s", path)
	}
	log.Info().Str("path", path).Int("cultures", r.Len()).Msg("loaded culture overrides")
	return nil
}

func (e cultureEntry) culture() (*Culture, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, oops.New("culture name is required")
	}
	tag, err := language.Parse(e.Name)
	if err != nil {
		return nil, oops.Wrapf(err, "culture %q", e.Name)
	}

	c := New(tag)
	if e.DecimalSeparator != "" {
		c.DecimalSeparator = e.DecimalSeparator
		c.PositivePattern = defaultPositivePattern(e.DecimalSeparator)
		c.NegativePattern = defaultNegativePattern(e.DecimalSeparator)
	}
	if e.PositivePattern != "" {
		c.PositivePattern = e.PositivePattern
		if e.NegativePattern == "" {
			c.NegativePattern = "'-'" + e.PositivePattern
		}
	}
	if e.NegativePattern != "" {
		c.NegativePattern = e.NegativePattern
	}
	if err := c.validate(); err != nil {
		return nil, oops.Wrapf(err, "culture %q", e.Name)
	}
	return c, nil
}

// Register adds c, replacing any culture of the same name and evicting the
// replaced culture's memoized literals.
func (r *Registry) Register(c *Culture) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.cache = r.literals
	key := cultureKey(c.Name)
	if old, replaced := r.cultures.Set(key, c); replaced && old != c {
		r.literals.Remove(literalsKey{culture: old, negative: false})
		r.literals.Remove(literalsKey{culture: old, negative: true})
	}

	tags := make([]language.Tag, 0, r.cultures.Len())
	for pair := r.cultures.Oldest(); pair != nil; pair = pair.Next() {
		tags = append(tags, pair.Value.Tag)
	}
	r.matcher = language.NewMatcher(tags)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cultures.Len()
}

// Cultures returns the registered cultures in registration order.
func (r *Registry) Cultures() []*Culture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Culture, 0, r.cultures.Len())
	for pair := r.cultures.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// IsInvariantName reports whether name asks for the invariant culture itself.
func IsInvariantName(name string) bool {
	key := cultureKey(name)
	return key == "" || key == InvariantName
}

// Lookup resolves name to a registered culture: an exact name first, then the
// closest language match. Unknown names and "invariant" give Invariant.
func (r *Registry) Lookup(name string) *Culture {
	if IsInvariantName(name) {
		return Invariant
	}
	key := cultureKey(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.cultures.Get(key); ok {
		return c
	}
	if r.matcher == nil {
		return Invariant
	}
	tag, err := language.Parse(name)
	if err != nil {
		log.Debug().Err(err).Str("culture", name).Msg("unparseable culture, using invariant")
		return Invariant
	}
	_, index, confidence := r.matcher.Match(tag)
	if confidence == language.No {
		return Invariant
	}

	i := 0
	for pair := r.cultures.Oldest(); pair != nil; pair = pair.Next() {
		if i == index {
			return pair.Value
		}
		i++
	}
	return Invariant
}
