package nlp

import (
	"errors"
	"math"
	"sort"
	"strings"
)

var (
	ErrNotFitted   = errors.New("VECTORIZER_NOT_FITTED")
	ErrEmptyCorpus = errors.New("VECTORIZER_EMPTY_CORPUS")
)

// Vectorizer is a TF-IDF bag of unigrams and bigrams over normalized,
// stopword-filtered text, with the vocabulary capped at a fixed size.
// It is fitted exactly once at startup and read-only afterwards, so
// concurrent Transform calls need no synchronization.
type Vectorizer struct {
	maxFeatures int
	vocabulary  map[string]int
	idf         []float64
	fitted      bool
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 1000
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// terms produces unigrams and adjacent bigrams from normalized text with
// stopwords removed.
func terms(text string) []string {
	fields := strings.Fields(Normalize(text))
	kept := fields[:0]
	for _, f := range fields {
		if !IsStopword(f) {
			kept = append(kept, f)
		}
	}

	out := make([]string, 0, 2*len(kept))
	out = append(out, kept...)
	for i := 0; i+1 < len(kept); i++ {
		out = append(out, kept[i]+" "+kept[i+1])
	}
	return out
}

// Fit builds the vocabulary and inverse document frequencies from the
// corpus. When the cap is exceeded the most frequent terms win, ties
// resolved alphabetically.
func (v *Vectorizer) Fit(corpus []string) error {
	totalCounts := make(map[string]int)
	docCounts := make(map[string]int)
	nDocs := 0

	for _, doc := range corpus {
		docTerms := terms(doc)
		if len(docTerms) == 0 {
			continue
		}
		nDocs++
		seen := make(map[string]struct{}, len(docTerms))
		for _, t := range docTerms {
			totalCounts[t]++
			seen[t] = struct{}{}
		}
		for t := range seen {
			docCounts[t]++
		}
	}

	if len(totalCounts) == 0 {
		return ErrEmptyCorpus
	}

	selected := make([]string, 0, len(totalCounts))
	for t := range totalCounts {
		selected = append(selected, t)
	}
	sort.Slice(selected, func(i, j int) bool {
		if totalCounts[selected[i]] != totalCounts[selected[j]] {
			return totalCounts[selected[i]] > totalCounts[selected[j]]
		}
		return selected[i] < selected[j]
	})
	if len(selected) > v.maxFeatures {
		selected = selected[:v.maxFeatures]
	}
	sort.Strings(selected)

	v.vocabulary = make(map[string]int, len(selected))
	v.idf = make([]float64, len(selected))
	for i, t := range selected {
		v.vocabulary[t] = i
		v.idf[i] = math.Log(float64(1+nDocs)/float64(1+docCounts[t])) + 1
	}
	v.fitted = true
	return nil
}

// Transform vectorizes one text as an l2-normalized TF-IDF vector. A text
// sharing no vocabulary with the corpus yields the zero vector, which is
// distinct from the scorer itself being broken (ErrNotFitted).
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	vec := make([]float64, len(v.idf))
	for _, t := range terms(text) {
		if i, ok := v.vocabulary[t]; ok {
			vec[i] += v.idf[i]
		}
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// Fitted reports whether Fit succeeded.
func (v *Vectorizer) Fitted() bool {
	return v.fitted
}

// VocabularySize returns the number of retained terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.idf)
}

// CosineSimilarity of two equal-length vectors. Zero when either vector
// has zero magnitude.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
