package pipeline

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
)

var tagFold = cases.Fold()

// EntityTagger recognizes known fantasy items/NPCs/locations in raw text
// (spec.md §4.7 stage 2: "an external entity-ruler recognizes fantasy
// items/NPCs/locations"). Tokenization is delegated to prose (grounded on
// the entity/NLP stack of the opd-ai-desktop-companion example); matching
// against the known vocabulary is a simple case-folded substring/n-gram
// scan, since prose's bundled NER model only knows mundane entity classes
// (PERSON, ORG, GPE) and has no notion of "health_potion_small".
type EntityTagger struct {
	Vocabulary map[string]struct{} // folded display name -> present
}

// NewEntityTagger builds a tagger over the given known entity names (item
// names, NPC names, location names).
func NewEntityTagger(names []string) *EntityTagger {
	vocab := make(map[string]struct{}, len(names))
	for _, n := range names {
		vocab[tagFold.String(n)] = struct{}{}
	}
	return &EntityTagger{Vocabulary: vocab}
}

// Tag tokenizes text with prose and returns every known vocabulary entry
// that appears as a contiguous run of tokens (checking 3-, 2-, then
// 1-token windows so multi-word names like "health potion" match before
// their component words do).
func (t *EntityTagger) Tag(text string) []string {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		return nil
	}

	var words []string
	for _, tok := range doc.Tokens() {
		w := strings.TrimSpace(tok.Text)
		if w == "" {
			continue
		}
		words = append(words, w)
	}

	seen := map[string]struct{}{}
	var matches []string
	for window := 3; window >= 1; window-- {
		for i := 0; i+window <= len(words); i++ {
			phrase := tagFold.String(strings.Join(words[i:i+window], " "))
			if _, ok := t.Vocabulary[phrase]; !ok {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			matches = append(matches, phrase)
		}
	}

	return matches
}
