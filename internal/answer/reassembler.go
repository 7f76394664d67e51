// Package answer reconstructs a streamed completion into its display parts:
// the markdown answer body and the list of source URLs that follows the
// SOURCES: marker.
package answer

import (
	"strings"

	"github.com/astrolabs/webdev-answerbot/internal/stream"
)

const sourcesMarker = "SOURCES:"

type Answer struct {
	Body    string
	Sources []Source
}

// Source is one line from the SOURCES section. IsLink reports whether the
// line looks like a URL and should be rendered as one.
type Source struct {
	URL    string
	IsLink bool
}

// Reassemble drains the stream, concatenating fragments in delivery order,
// then parses the accumulated text. The result is independent of where the
// fragment boundaries fell. A transport error surfaces as-is; the partial
// text is discarded because a truncated stream means no answer.
func Reassemble(s stream.Stream) (Answer, error) {
	var full strings.Builder

	for s.Next() {
		full.WriteString(s.Current())
	}
	if err := s.Err(); err != nil {
		return Answer{}, err
	}

	return Parse(full.String()), nil
}

// Parse splits the full answer text on the first literal SOURCES: marker.
// Everything before is the answer body; every non-empty line after is one
// source. Leading hyphens are stripped from source lines, a list-marker
// artifact the completion model sometimes emits.
func Parse(full string) Answer {
	body, rest, found := strings.Cut(full, sourcesMarker)
	parsed := Answer{Body: body}
	if !found {
		return parsed
	}

	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "-"))
		if line == "" {
			continue
		}

		parsed.Sources = append(parsed.Sources, Source{
			URL:    line,
			IsLink: strings.Contains(line, "http"),
		})
	}

	return parsed
}
