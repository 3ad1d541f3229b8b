package accessor

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	dotToken = iota
	indexBlockToken
)

var (
	dotMatcher        = parsly.NewToken(dotToken, ".", matcher.NewTerminator('.', true))
	indexBlockMatcher = parsly.NewToken(indexBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
)

type segment struct {
	name     string
	index    int
	hasIndex bool
}

// parsePath tokenizes an attribute path, i.e. Readout.Channels[2].Gain
func parsePath(aPath string) ([]segment, error) {
	cursor := parsly.NewCursor("", []byte(aPath), 0)
	var result []segment
	for cursor.Pos < len(cursor.Input) {
		seg, err := matchSegment(cursor)
		if err != nil {
			return nil, fmt.Errorf("accessor: invalid path %q: %w", aPath, err)
		}
		if seg.name == "" {
			return nil, fmt.Errorf("accessor: invalid path %q: empty segment", aPath)
		}
		result = append(result, seg)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("accessor: path was empty")
	}
	return result, nil
}

func matchSegment(cursor *parsly.Cursor) (segment, error) {
	var seg segment
	input := cursor.Input[cursor.Pos:]
	brIndex := bytes.IndexByte(input, '[')
	dotIndex := bytes.IndexByte(input, '.')
	if brIndex != -1 && (dotIndex == -1 || brIndex < dotIndex) {
		seg.name = string(input[:brIndex])
		cursor.Pos += brIndex
		match := cursor.MatchAny(indexBlockMatcher)
		if match.Code != indexBlockToken {
			return seg, fmt.Errorf("expected [index] after %v", seg.name)
		}
		block := match.Text(cursor)
		block = block[1 : len(block)-1] //exclude [ ]
		index, err := strconv.Atoi(strings.TrimSpace(block))
		if err != nil {
			return seg, fmt.Errorf("invalid index %q", block)
		}
		seg.index = index
		seg.hasIndex = true
		if cursor.Pos < len(cursor.Input) {
			if cursor.Input[cursor.Pos] != '.' {
				return seg, fmt.Errorf("expected '.' after %v[%v]", seg.name, seg.index)
			}
			cursor.Pos++
			if cursor.Pos == len(cursor.Input) {
				return seg, fmt.Errorf("path ends with '.'")
			}
		}
		return seg, nil
	}
	match := cursor.MatchAny(dotMatcher)
	if match.Code == dotToken {
		value := match.Text(cursor)
		seg.name = value[:len(value)-1] //exclude .
		if cursor.Pos == len(cursor.Input) {
			return seg, fmt.Errorf("path ends with '.'")
		}
		return seg, nil
	}
	seg.name = string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return seg, nil
}
