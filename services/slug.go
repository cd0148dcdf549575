package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"property-importer/utils"
)

var (
	slugAccentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonSlugRe          = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify converts a title to a lowercase, accent-free, hyphen-separated slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if out, _, err := transform.String(slugAccentStripper, s); err == nil {
		s = out
	}
	s = nonSlugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugService tracks the slugs already persisted for the tenant. It never
// hands out slugs itself: each pipeline run opens a Session that layers a
// scratch set over the persisted one, so re-running a preview over the same
// file yields the same slugs. Permanent claims happen at commit, where the
// database enforces slug uniqueness.
type SlugService struct {
	persisted *utils.SlugSet
}

// NewSlugService creates a SlugService with an empty persisted set.
func NewSlugService() *SlugService {
	return &SlugService{persisted: utils.NewSlugSet()}
}

// Preload marks already-persisted slugs as taken for every future session.
func (s *SlugService) Preload(slugs []string) {
	for _, slug := range slugs {
		s.persisted.Add(slug)
	}
}

// Session returns a slug generator scoped to one pipeline run.
func (s *SlugService) Session() *SlugSession {
	return &SlugSession{persisted: s.persisted, local: make(map[string]struct{})}
}

// SlugSession issues slugs unique within one run and against the persisted
// set; collisions get a numeric suffix ("-2", "-3", …). Sessions share no
// state with each other and are not safe for concurrent use: each run gets
// its own.
type SlugSession struct {
	persisted *utils.SlugSet
	local     map[string]struct{}
}

// GenerateUniqueSlug slugifies the title and returns the first variant free
// in both the persisted set and this session.
func (s *SlugSession) GenerateUniqueSlug(title string) string {
	base := Slugify(title)
	if base == "" {
		base = "propiedad"
	}
	for n := 1; ; n++ {
		candidate := base
		if n > 1 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		if s.persisted.Contains(candidate) {
			continue
		}
		if _, taken := s.local[candidate]; taken {
			continue
		}
		s.local[candidate] = struct{}{}
		return candidate
	}
}
