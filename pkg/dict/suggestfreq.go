package dict

import "math"

// SuggestFreqFromTokens implements the suggest_freq formula of spec.md §4.5:
// the minimum frequency a segment would need, inserted as a single word, to
// outweigh the probability of its current best segmentation into
// tokenFreqs (the freq of each token produced by cut(segment, hmm=false),
// in order). total is the dictionary's Total() at the time of the query;
// currentFreq is the segment's own freq if it is already a dictionary word
// (0 otherwise).
func SuggestFreqFromTokens(tokenFreqs []int, total int, currentFreq int) int {
	if len(tokenFreqs) == 0 {
		return currentFreq
	}
	logTotal := math.Log(float64(total))
	sum := 0.0
	for _, f := range tokenFreqs {
		freq := f
		if freq <= 0 {
			freq = 1
		}
		sum += math.Log(float64(freq))
	}
	sum -= float64(len(tokenFreqs)-1) * logTotal
	estimate := int(math.Round(math.Exp(sum))) + 1
	if estimate > currentFreq {
		return estimate
	}
	return currentFreq
}
