package tags

import (
	"regexp"
	"sort"
	"strings"
)

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an the and or but in on at to for
		of with by from as is was are were been be have has had do does did
		will would could should may might must shall can need that this
		these those i you he she it we they what which who whom their its
		his her our your my about into through during before after above
		below between under over such no not only same so than too very
		just also now here there when where why how all each every both few
		more most other some any many much own out up down off then once
		again further while although because if unless until since even
		though whether unknown nan none 0 0.0`) {
		stopwords[w] = struct{}{}
	}
	stopwords[""] = struct{}{}
}

var nonWordRe = regexp.MustCompile(`[^\w\s-]`)

// Tokenize lowercases text, strips punctuation, and drops stopwords and
// words of two characters or fewer.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	var out []string
	for _, w := range strings.Fields(cleaned) {
		if _, stop := stopwords[w]; stop || len(w) <= 2 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// NgramCount is an ngram with its occurrence count across a corpus.
type NgramCount struct {
	Ngram string
	Count int
}

// ExtractNgrams counts n-word sequences across texts and returns the topK
// most common, ties broken alphabetically for stable output.
func ExtractNgrams(texts []string, n, topK int) []NgramCount {
	if n < 1 {
		return nil
	}
	counts := make(map[string]int)
	for _, text := range texts {
		toks := Tokenize(text)
		for i := 0; i+n <= len(toks); i++ {
			counts[strings.Join(toks[i:i+n], " ")]++
		}
	}
	out := make([]NgramCount, 0, len(counts))
	for g, c := range counts {
		out = append(out, NgramCount{Ngram: g, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Ngram < out[j].Ngram
	})
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out
}
