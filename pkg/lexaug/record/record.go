package record

// Record is one token annotation read from a corpus line.
type Record struct {
	Token    string
	Lemma    string
	Category string // part-of-speech tag
	Morph    string // empty unless read in morph mode
}

// Corpus is a parsed corpus file.
type Corpus struct {
	Records []Record

	// Breaks holds, for each blank line in the input, the number of records
	// read before it. A break at n means a sentence ended after Records[n-1].
	Breaks []int
}

// Len returns the number of records in the corpus.
func (c Corpus) Len() int {
	return len(c.Records)
}

// Concat joins corpora, keeping a sentence break between them.
func Concat(corpora ...Corpus) Corpus {
	var out Corpus
	for _, c := range corpora {
		offset := len(out.Records)
		out.Records = append(out.Records, c.Records...)
		for _, b := range c.Breaks {
			out.Breaks = append(out.Breaks, b+offset)
		}
		n := len(out.Records)
		if len(c.Records) > 0 && (len(out.Breaks) == 0 || out.Breaks[len(out.Breaks)-1] != n) {
			out.Breaks = append(out.Breaks, n)
		}
	}
	return out
}
