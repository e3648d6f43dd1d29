package classifier

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/clockings/internal/models"
)

var ErrInvalidRule = errors.New("invalid vocabulary rule")

// Rule maps a terminal description fragment to a badge direction.
type Rule struct {
	Pattern   string           `yaml:"pattern"`
	Direction models.Direction `yaml:"direction"`
}

// Vocabulary is the on-disk form of the rule table.
type Vocabulary struct {
	Rules []Rule `yaml:"rules"`
}

// Classifier evaluates rules in order; the first rule whose pattern is
// contained in the description wins. Matching is case-sensitive.
type Classifier struct {
	rules []Rule
}

// DefaultRules is the door and terminal table in use at head office.
// Incoming patterns are listed first so they take precedence.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: "Side Door Entry at Server", Direction: models.DirectionIncoming},
		{Pattern: "Canteen Exit to Stairs", Direction: models.DirectionIncoming},
		{Pattern: "HO Main Staff IN", Direction: models.DirectionIncoming},
		{Pattern: "Boom 2 Entry", Direction: models.DirectionIncoming},
		{Pattern: "Central Sorting Entry", Direction: models.DirectionIncoming},
		{Pattern: "Procurement Passage Entry", Direction: models.DirectionIncoming},
		{Pattern: "Canteen Entry from labs", Direction: models.DirectionIncoming},
		{Pattern: "Canteen Entry from Stairs", Direction: models.DirectionOutgoing},
		{Pattern: "HO Main Staff OUT", Direction: models.DirectionOutgoing},
		{Pattern: "Side Door Exit at Server", Direction: models.DirectionOutgoing},
		{Pattern: "Procurement Passage Exit", Direction: models.DirectionOutgoing},
		{Pattern: "Canteen Exit to labs", Direction: models.DirectionOutgoing},
	}
}

// New returns a classifier over the given rules after validating them.
func New(rules []Rule) (*Classifier, error) {
	for i, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Classifier{rules: cp}, nil
}

// Default returns a classifier over DefaultRules.
func Default() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Load reads a YAML vocabulary file. An empty path yields the default table.
func Load(path string) (*Classifier, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML vocabulary document.
func Parse(data []byte) (*Classifier, error) {
	var vocab Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if len(vocab.Rules) == 0 {
		return nil, fmt.Errorf("%w: vocabulary has no rules", ErrInvalidRule)
	}
	return New(vocab.Rules)
}

// Marshal encodes rules as a YAML vocabulary document.
func Marshal(rules []Rule) ([]byte, error) {
	return yaml.Marshal(Vocabulary{Rules: rules})
}

func validateRule(r Rule) error {
	if r.Pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidRule)
	}
	if !r.Direction.Valid() {
		return fmt.Errorf("%w: pattern %q has direction %q, want %q or %q",
			ErrInvalidRule, r.Pattern, r.Direction, models.DirectionIncoming, models.DirectionOutgoing)
	}
	return nil
}

// Classify returns the direction of the first matching rule, or DirectionUnknown.
func (c *Classifier) Classify(description string) models.Direction {
	for _, r := range c.rules {
		if strings.Contains(description, r.Pattern) {
			return r.Direction
		}
	}
	return models.DirectionUnknown
}

// Rules returns a copy of the rule table.
func (c *Classifier) Rules() []Rule {
	cp := make([]Rule, len(c.rules))
	copy(cp, c.rules)
	return cp
}
