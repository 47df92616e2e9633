package chacoio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linorder/core"
)

// Read parses a Chaco-format graph from r and returns the populated
// Graph. The header line is "N M [FMT]"; FMT, if present, is 0
// (unweighted, the default) or 1 (weighted). N node lines follow, each a
// whitespace-separated neighbor list (each neighbor followed by its
// weight when FMT=1); lines starting with '%' or '#' are comments and are
// skipped without taking up a node's line, so each node's data is the
// next non-comment line.
func Read(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, ErrEmptyFile
	}
	nv, weighted, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(nv)
	for i := 1; i <= nv; i++ {
		line, ok := nextDataLine(scanner)
		if !ok {
			return nil, fmt.Errorf("%w %d", ErrMissingNodeLine, i)
		}
		if err := insertNodeArcs(g, core.NodeIndex(i), line, weighted); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}

	if a, directed := g.Directed(); directed {
		i, _ := g.ArcSource(a)
		j := g.ArcTarget(a)
		return nil, fmt.Errorf("%w: (%d, %d)", ErrDirected, i, j)
	}
	return g, nil
}

// parseHeader parses "N M [FMT]", returning the node count and whether
// the graph is weighted. M (edge count) is part of the format but not
// needed to drive construction, since node lines are self-describing.
func parseHeader(line string) (nv int, weighted bool, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false, ErrBadHeader
	}
	nv, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if _, err := strconv.Atoi(fields[1]); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if len(fields) < 3 {
		return nv, false, nil
	}
	fmtField, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	switch fmtField {
	case 0:
		return nv, false, nil
	case 1:
		return nv, true, nil
	default:
		return 0, false, ErrBadFormat
	}
}

// nextDataLine returns the next line that is not a comment, or false if
// the input is exhausted first.
func nextDataLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

// insertNodeArcs parses node i's neighbor list and inserts the
// corresponding arcs in ascending source order (always i here, since the
// reader processes nodes 1..N in sequence).
func insertNodeArcs(g *core.Graph, i core.NodeIndex, line string, weighted bool) error {
	fields := strings.Fields(line)
	for k := 0; k < len(fields); k++ {
		j, err := strconv.Atoi(fields[k])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadNeighbor, fields[k])
		}
		w := 1.0
		if weighted {
			k++
			if k >= len(fields) {
				return fmt.Errorf("%w: missing weight", ErrBadNeighbor)
			}
			w, err = strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrBadNeighbor, fields[k])
			}
		}
		if _, ok := g.InsertArc(i, core.NodeIndex(j), w, w); !ok {
			return ErrInsertFailed
		}
	}
	return nil
}
