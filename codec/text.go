package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// ErrSyntax wraps every line the text grammar rejects.
var ErrSyntax = errors.New("syntax error")

const (
	ringDelimiter    = " > "
	twoWayDelimiter  = " - "
	distanceInfix    = "m to "
	nameDelimiter    = ": "
	coordsDelimiter  = ", "
	maxTextLineBytes = 1 << 20
)

// DecodeText reads the line-oriented grammar:
//
//	3
//	Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino
//	Stop Marushkino: 55.595884, 37.209755
//	Bus 256: Tolstopaltsevo - Marushkino
//	2
//	Bus 256
//	Stop Marushkino
//
// "A - B - C" declares a two-way route, "A > B > C > A" a ring. Queries carry no
// id in this grammar; each gets its 1-based position among the queries.
// Blank lines are ignored.
func DecodeText(r io.Reader) (requests.Batch, error) {
	lr := newLineReader(r)
	var b requests.Batch

	n, err := lr.count()
	if err != nil {
		return requests.Batch{}, err
	}
	b.BaseRequests = make([]requests.Record, 0, n)
	for i := 0; i < n; i++ {
		line, err := lr.next()
		if err != nil {
			return requests.Batch{}, err
		}
		rec, err := parseMutationLine(line)
		if err != nil {
			return requests.Batch{}, fmt.Errorf("line %d: %w", lr.lineNo, err)
		}
		b.BaseRequests = append(b.BaseRequests, rec)
	}

	n, err = lr.count()
	if err != nil {
		return requests.Batch{}, err
	}
	b.StatRequests = make([]requests.Record, 0, n)
	for i := 0; i < n; i++ {
		line, err := lr.next()
		if err != nil {
			return requests.Batch{}, err
		}
		rec, err := parseQueryLine(line, int64(i+1))
		if err != nil {
			return requests.Batch{}, fmt.Errorf("line %d: %w", lr.lineNo, err)
		}
		b.StatRequests = append(b.StatRequests, rec)
	}
	return b, nil
}

type lineReader struct {
	sc     *bufio.Scanner
	lineNo int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTextLineBytes)
	return &lineReader{sc: sc}
}

// next returns the next non-blank line with surrounding whitespace trimmed.
func (lr *lineReader) next() (string, error) {
	for lr.sc.Scan() {
		lr.lineNo++
		line := strings.TrimSpace(lr.sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("line %d: %w: unexpected end of input", lr.lineNo, ErrSyntax)
}

func (lr *lineReader) count() (int, error) {
	line, err := lr.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: %w: bad request count %q", lr.lineNo, ErrSyntax, line)
	}
	return n, nil
}

func splitKind(line string) (string, string, error) {
	kind, rest, ok := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	if !ok || rest == "" {
		return "", "", fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	switch kind {
	case requests.TypeStop, requests.TypeBus:
		return kind, rest, nil
	default:
		return "", "", fmt.Errorf("%w: unknown request %q", ErrSyntax, kind)
	}
}

func parseMutationLine(line string) (requests.Record, error) {
	kind, rest, err := splitKind(line)
	if err != nil {
		return requests.Record{}, err
	}
	name, body, ok := strings.Cut(rest, nameDelimiter)
	if !ok {
		return requests.Record{}, fmt.Errorf("%w: missing %q in %q", ErrSyntax, nameDelimiter, line)
	}
	name = strings.TrimSpace(name)
	if kind == requests.TypeBus {
		return parseBusBody(name, body)
	}
	return parseStopBody(name, body)
}

// parseStopBody reads "LAT, LON[, Dm to NEIGHBOR]*".
func parseStopBody(name, body string) (requests.Record, error) {
	parts := strings.Split(body, coordsDelimiter)
	if len(parts) < 2 {
		return requests.Record{}, fmt.Errorf("%w: stop %q needs latitude and longitude", ErrSyntax, name)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return requests.Record{}, fmt.Errorf("%w: stop %q latitude: %v", ErrSyntax, name, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return requests.Record{}, fmt.Errorf("%w: stop %q longitude: %v", ErrSyntax, name, err)
	}
	rec := requests.Record{Type: requests.TypeStop, Name: name, Latitude: &lat, Longitude: &lon}
	for _, p := range parts[2:] {
		meters, neighbor, ok := strings.Cut(strings.TrimSpace(p), distanceInfix)
		if !ok {
			return requests.Record{}, fmt.Errorf("%w: stop %q distance %q", ErrSyntax, name, p)
		}
		d, err := strconv.Atoi(meters)
		if err != nil {
			return requests.Record{}, fmt.Errorf("%w: stop %q distance %q", ErrSyntax, name, p)
		}
		if rec.RoadDistances == nil {
			rec.RoadDistances = map[string]int{}
		}
		neighbor = strings.TrimSpace(neighbor)
		if _, dup := rec.RoadDistances[neighbor]; !dup {
			rec.RoadDistances[neighbor] = d
		}
	}
	return rec, nil
}

// parseBusBody reads "A - B - C" or "A > B > A". A single stop name is a two-way route.
func parseBusBody(number, body string) (requests.Record, error) {
	delim := twoWayDelimiter
	ring := strings.Contains(body, ringDelimiter)
	if ring {
		if strings.Contains(body, twoWayDelimiter) {
			return requests.Record{}, fmt.Errorf("%w: bus %q mixes %q and %q", ErrSyntax, number, ringDelimiter, twoWayDelimiter)
		}
		delim = ringDelimiter
	}
	var stops []string
	for _, s := range strings.Split(body, delim) {
		stops = append(stops, strings.TrimSpace(s))
	}
	return requests.Record{Type: requests.TypeBus, Name: number, Stops: stops, IsRoundtrip: ring}, nil
}

func parseQueryLine(line string, id int64) (requests.Record, error) {
	kind, name, err := splitKind(line)
	if err != nil {
		return requests.Record{}, err
	}
	return requests.Record{Type: kind, Name: name, ID: &id}, nil
}
