// Package relevance implements the fixed-vocabulary TF-IDF model used to
// score facility records against free-text queries.
package relevance

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// MaxFeatures - размер словаря по умолчанию
const MaxFeatures = 500

// Tokens shorter than two word characters carry no signal and are dropped,
// matching the \w\w+ convention of common text vectorizers.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// Entry - один ненулевой компонент разреженного вектора весов
type Entry struct {
	Index  int     `json:"i"`
	Weight float64 `json:"w"`
}

// Vector - разреженный L2-нормированный вектор весов, отсортированный по индексу
type Vector []Entry

// Vectorizer - обученная TF-IDF модель: словарь и IDF-веса.
// После Fit модель неизменяема и безопасна для конкурентного чтения.
type Vectorizer struct {
	// Terms holds the vocabulary in lexicographic order; a term's position
	// is its weight-vector index.
	Terms []string  `json:"terms"`
	IDF   []float64 `json:"idf"`
	Docs  int       `json:"docs"`

	index map[string]int
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Fit обучает модель на корпусе. Словарь ограничен maxFeatures термами
// с наибольшей суммарной частотой по корпусу; равные частоты упорядочены
// лексикографически, поэтому повторный Fit на том же корпусе даёт
// идентичную модель.
func Fit(corpus []string, maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = MaxFeatures
	}

	termFreq := make(map[string]int) // total occurrences across the corpus
	docFreq := make(map[string]int)  // number of documents containing the term

	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			termFreq[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(termFreq))
	for t := range termFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	// Vector indices are assigned in lexicographic term order.
	sort.Strings(terms)

	v := &Vectorizer{
		Terms: terms,
		IDF:   make([]float64, len(terms)),
		Docs:  len(corpus),
		index: make(map[string]int, len(terms)),
	}
	for i, t := range terms {
		v.index[t] = i
		// Smoothed IDF: every term behaves as if seen in one extra document.
		v.IDF[i] = math.Log(float64(1+v.Docs)/float64(1+docFreq[t])) + 1
	}
	return v
}

// Reindex восстанавливает внутренний поисковый индекс после загрузки
// модели из артефакта.
func (v *Vectorizer) Reindex() {
	v.index = make(map[string]int, len(v.Terms))
	for i, t := range v.Terms {
		v.index[t] = i
	}
}

// Transform преобразует документ в разреженный L2-нормированный вектор весов.
// Термы вне словаря игнорируются; документ без известных термов даёт
// пустой вектор.
func (v *Vectorizer) Transform(doc string) Vector {
	counts := make(map[int]int)
	for _, tok := range tokenize(doc) {
		if i, ok := v.index[tok]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	vec := make(Vector, 0, len(counts))
	var norm float64
	for i, tf := range counts {
		w := float64(tf) * v.IDF[i]
		vec = append(vec, Entry{Index: i, Weight: w})
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].Weight /= norm
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })
	return vec
}

// Cosine возвращает косинусную близость двух нормированных векторов в [0,1].
// Для L2-нормированных векторов это скалярное произведение.
func Cosine(a, b Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			dot += a[i].Weight * b[j].Weight
			i++
			j++
		case a[i].Index < b[j].Index:
			i++
		default:
			j++
		}
	}
	return dot
}
