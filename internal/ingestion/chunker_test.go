package ingestion

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunker_Chunk(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		text      string
		wantCount int
		wantLast  string
	}{
		{
			name:      "empty input",
			size:      5,
			text:      "",
			wantCount: 0,
		},
		{
			name:      "shorter than window",
			size:      10,
			text:      "short",
			wantCount: 1,
			wantLast:  "short",
		},
		{
			name:      "exact multiple",
			size:      3,
			text:      "abcdef",
			wantCount: 2,
			wantLast:  "def",
		},
		{
			name:      "remainder in final window",
			size:      4,
			text:      "abcdefghij",
			wantCount: 3,
			wantLast:  "ij",
		},
		{
			name:      "multi-byte runes count as one character",
			size:      2,
			text:      "héllo",
			wantCount: 3,
			wantLast:  "o",
		},
		{
			name:      "invalid size",
			size:      0,
			text:      "anything",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := NewChunker(tt.size).Chunk(tt.text)

			if len(chunks) != tt.wantCount {
				t.Fatalf("chunk count: got %d, want %d", len(chunks), tt.wantCount)
			}
			if tt.wantCount > 0 && chunks[len(chunks)-1].Content != tt.wantLast {
				t.Errorf("last chunk: got %q, want %q", chunks[len(chunks)-1].Content, tt.wantLast)
			}
		})
	}
}

// Concatenating the chunks must reconstruct the input exactly, every chunk
// but the last must fill the window, and indexes must be sequential.
func TestChunker_LosslessPartition(t *testing.T) {
	inputs := []string{
		"a",
		"hello world, this splits mid-word without remorse",
		"“smart quotes” and naïve café — über-common in docs",
		strings.Repeat("documentation text ", 137),
	}

	for _, text := range inputs {
		for _, size := range []int{1, 3, 7, 1000} {
			chunks := NewChunker(size).Chunk(text)

			var rebuilt strings.Builder
			for i, chunk := range chunks {
				if chunk.Index != i {
					t.Fatalf("size %d: chunk %d has index %d", size, i, chunk.Index)
				}
				if !utf8.ValidString(chunk.Content) {
					t.Fatalf("size %d: chunk %d is not valid UTF-8: %q", size, i, chunk.Content)
				}
				length := utf8.RuneCountInString(chunk.Content)
				if length == 0 {
					t.Fatalf("size %d: empty chunk at %d", size, i)
				}
				if i < len(chunks)-1 && length != size {
					t.Fatalf("size %d: chunk %d has length %d, want %d", size, i, length, size)
				}
				if length > size {
					t.Fatalf("size %d: chunk %d exceeds window: %d", size, i, length)
				}
				rebuilt.WriteString(chunk.Content)
			}

			if rebuilt.String() != text {
				t.Errorf("size %d: reconstruction mismatch", size)
			}
		}
	}
}
