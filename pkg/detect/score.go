package detect

import (
	"sort"
)

// englishFreq is the relative frequency of lowercase letters and space in English prose.
var englishFreq = map[byte]float64{
	' ': 0.1918,
	'a': 0.0653, 'b': 0.0126, 'c': 0.0223, 'd': 0.0328, 'e': 0.1027,
	'f': 0.0198, 'g': 0.0162, 'h': 0.0498, 'i': 0.0567, 'j': 0.0010,
	'k': 0.0056, 'l': 0.0331, 'm': 0.0203, 'n': 0.0571, 'o': 0.0616,
	'p': 0.0150, 'q': 0.0008, 'r': 0.0499, 's': 0.0532, 't': 0.0752,
	'u': 0.0228, 'v': 0.0080, 'w': 0.0170, 'x': 0.0014, 'y': 0.0143,
	'z': 0.0005,
}

// Score sums the English frequency of each character in text, ignoring case.
// Higher scores are closer to English by a coarse measure.
func Score(text string) float64 {
	var score float64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		score += englishFreq[c]
	}
	return score
}

type scoredCandidate struct {
	Candidate
	score float64
}

// Rank returns a copy of cands ordered by descending Score.
// Candidates with equal scores keep their relative order.
func Rank(cands []Candidate) []Candidate {
	scored := make([]scoredCandidate, len(cands))
	for i, cand := range cands {
		scored[i] = scoredCandidate{Candidate: cand, score: Score(cand.Text)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	ranked := make([]Candidate, len(scored))
	for i, sc := range scored {
		ranked[i] = sc.Candidate
	}
	return ranked
}

// Best returns the highest ranked Candidate for data, or false if there are none.
func (d *Detector) Best(data []byte) (Candidate, bool) {
	ranked := Rank(d.Find(data))
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	return ranked[0], true
}

// Best returns the highest ranked Candidate for data using the default Detector.
func Best(data []byte) (Candidate, bool) {
	return defaultDetector.Best(data)
}
