package api

// PairScoreV1 is the stable JSON schema for batch scores.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairScoreV1 struct {
	ReadA string `json:"read_a"`
	ReadB string `json:"read_b"`
	Score int    `json:"score"`
}

// AlignmentV1 is the stable JSON schema for a single rendered
// alignment.
type AlignmentV1 struct {
	Seq1       string `json:"seq1_aligned"`
	Seq2       string `json:"seq2_aligned"`
	Marks      string `json:"marks"`
	Score      int    `json:"score"`
	Length     int    `json:"length"`
	Identities int    `json:"identities"`
	Gaps       int    `json:"gaps"`
	Mismatches int    `json:"mismatches"`
}
