package database

// Match is one similarity-search result: a stored chunk, its origin URL, and
// a cosine similarity score in [0,1].
type Match struct {
	Content    string
	URL        string
	Similarity float64
}
