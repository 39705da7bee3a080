package ragService

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Document is one entry in the static support corpus. Vectors are filled
// in by BuildIndex; the corpus is small enough to recompute on every boot.
type Document struct {
	ID       string
	Category string
	Content  string
	Keywords []string

	vector map[string]float64
	norm   float64
}

// Index holds the vocabulary-wide IDF table plus vectorized documents.
type Index struct {
	docs []*Document
	idf  map[string]float64
}

// SearchResult pairs a matched document with its cosine similarity.
type SearchResult struct {
	Doc   *Document
	Score float64
}

const similarityFloor = 0.05

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return tf
	}
	for _, tok := range tokens {
		tf[tok]++
	}
	for tok := range tf {
		tf[tok] /= float64(len(tokens))
	}
	return tf
}

// BuildIndex computes the IDF table and a weighted vector per document.
// Keywords count toward the document's token stream so curated tags pull
// their documents up for matching queries.
func BuildIndex(docs []*Document) *Index {
	idx := &Index{docs: docs, idf: make(map[string]float64)}

	docTokens := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenize(doc.Content + " " + strings.Join(doc.Keywords, " "))
		docTokens[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	n := float64(len(docs))
	for tok, count := range df {
		idx.idf[tok] = math.Log(n/(1+float64(count))) + 1
	}

	for i, doc := range docs {
		doc.vector = idx.vectorize(docTokens[i])
		doc.norm = vectorNorm(doc.vector)
	}

	return idx
}

func (idx *Index) vectorize(tokens []string) map[string]float64 {
	vec := make(map[string]float64)
	for tok, tf := range termFrequencies(tokens) {
		if idf, ok := idx.idf[tok]; ok {
			vec[tok] = tf * idf
		}
	}
	return vec
}

func vectorNorm(vec map[string]float64) float64 {
	sum := 0.0
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func cosine(a, b map[string]float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for tok, w := range a {
		if w2, ok := b[tok]; ok {
			dot += w * w2
		}
	}
	return dot / (normA * normB)
}

// Similarity computes the cosine similarity of two raw texts against the
// index vocabulary. Exposed for the corpus self-check in tests.
func (idx *Index) Similarity(a, b string) float64 {
	va := idx.vectorize(tokenize(a))
	vb := idx.vectorize(tokenize(b))
	return cosine(va, vb, vectorNorm(va), vectorNorm(vb))
}

// Search returns up to k documents scoring at or above the similarity
// floor, best first. Linear scan; the corpus is tiny and static.
func (idx *Index) Search(query string, k int) []SearchResult {
	qVec := idx.vectorize(tokenize(query))
	qNorm := vectorNorm(qVec)

	var results []SearchResult
	for _, doc := range idx.docs {
		score := cosine(qVec, doc.vector, qNorm, doc.norm)
		if score >= similarityFloor {
			results = append(results, SearchResult{Doc: doc, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// FormatContext renders search results as a prompt context block.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Relevant documentation:\n")
	for _, r := range results {
		sb.WriteString("- [")
		sb.WriteString(r.Doc.Category)
		sb.WriteString("] ")
		sb.WriteString(r.Doc.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
