package ingestion

// Chunker partitions extracted page text into fixed-size, non-overlapping
// windows of Size characters. The split is deliberately naive: no word or
// sentence boundary awareness, the final window holds whatever remains.
// Windows are counted in runes so a boundary never lands inside a
// multi-byte sequence. Concatenating the chunks of one document in order
// reconstructs the input exactly.
type Chunker struct {
	Size int
}

type Chunk struct {
	Index   int
	Content string
}

func NewChunker(size int) *Chunker {
	return &Chunker{Size: size}
}

func (c *Chunker) Chunk(text string) []Chunk {
	if c.Size <= 0 || len(text) == 0 {
		return []Chunk{}
	}

	runes := []rune(text)

	chunks := []Chunk{}
	for start := 0; start < len(runes); start += c.Size {
		end := start + c.Size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Index:   len(chunks),
			Content: string(runes[start:end]),
		})
	}

	return chunks
}
