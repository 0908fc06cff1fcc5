// Package language ranks candidate decryptions by how confidently they read
// as English.
package language

import (
	"sort"

	"github.com/pemistahl/lingua-go"

	"matasano-xor-cryptanalysis/analysis"
)

// DefaultLanguages are weighed against English when none are given.
var DefaultLanguages = []lingua.Language{lingua.French, lingua.German, lingua.Spanish}

// Detector scores text by its likelihood of being English.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector returns a Detector weighing English against the given
// languages, or DefaultLanguages if there are none.
func NewDetector(langs ...lingua.Language) *Detector {
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	all := []lingua.Language{lingua.English}
	for _, l := range langs {
		if l != lingua.English && l != lingua.Unknown {
			all = append(all, l)
		}
	}
	if len(all) < 2 {
		all = append(all, DefaultLanguages...)
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(all...).Build(),
	}
}

// Confidence returns a value between 0 and 1 for how likely text is
// English.
func (d *Detector) Confidence(text []byte) float64 {
	return d.detector.ComputeLanguageConfidence(string(text), lingua.English)
}

// Rank returns the successful attempts ordered by descending English
// confidence, then by descending score.
func (d *Detector) Rank(attempts []analysis.Attempt) []analysis.Attempt {
	res := analysis.Successful(attempts)
	conf := make([]float64, len(res))
	for i, a := range res {
		conf[i] = d.Confidence(a.Plaintext)
	}
	idx := make([]int, len(res))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if conf[a] != conf[b] {
			return conf[a] > conf[b]
		}
		return res[a].Score > res[b].Score
	})
	ranked := make([]analysis.Attempt, len(res))
	for i, k := range idx {
		ranked[i] = res[k]
	}
	return ranked
}
