// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blast

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/rna-check/pkg/types"
)

// outFields is the tabular output format requested from blastn. stitle goes
// last because it is the only field that can contain spaces.
const outFields = "6 qseqid qstart qend sseqid sstart send slen evalue stitle"

const numFields = 9

// parseHits reads blastn tabular output and returns the hits that pass the
// parameter filters. The query location is always reported forward; the
// subject location carries the strand, reversed coordinates meaning the hit
// matched the reference's complement.
func parseHits(r io.Reader, parms Parms) ([]types.Hit, error) {
	var hits []types.Hit
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		hit, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("blast output line %d: %w", lineNo, err)
		}
		if hit.EValue > parms.MaxEValue {
			continue
		}
		if hit.SubjectCoverage < parms.MinSubjectCoverage {
			continue
		}
		hits = append(hits, hit)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading blast output: %w", err)
	}
	return hits, nil
}

func parseLine(line string) (types.Hit, error) {
	fields := strings.SplitN(line, "\t", numFields)
	if len(fields) < numFields {
		return types.Hit{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}

	qBegin, err := strconv.Atoi(fields[1])
	if err != nil {
		return types.Hit{}, fmt.Errorf("bad qstart %q: %w", fields[1], err)
	}
	qEnd, err := strconv.Atoi(fields[2])
	if err != nil {
		return types.Hit{}, fmt.Errorf("bad qend %q: %w", fields[2], err)
	}
	sBegin, err := strconv.Atoi(fields[4])
	if err != nil {
		return types.Hit{}, fmt.Errorf("bad sstart %q: %w", fields[4], err)
	}
	sEnd, err := strconv.Atoi(fields[5])
	if err != nil {
		return types.Hit{}, fmt.Errorf("bad send %q: %w", fields[5], err)
	}
	sLen, err := strconv.Atoi(fields[6])
	if err != nil {
		return types.Hit{}, fmt.Errorf("bad slen %q: %w", fields[6], err)
	}
	eValue, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return types.Hit{}, fmt.Errorf("bad evalue %q: %w", fields[7], err)
	}

	// blastn always reports the query forward; a reverse-strand match shows
	// up as descending subject coordinates.
	query, err := types.NewLocation(fields[0], qBegin, qEnd, types.StrandPlus)
	if err != nil {
		return types.Hit{}, fmt.Errorf("query location: %w", err)
	}
	sStrand := types.StrandPlus
	if sBegin > sEnd {
		sBegin, sEnd = sEnd, sBegin
		sStrand = types.StrandMinus
	}
	subject, err := types.NewLocation(fields[3], sBegin, sEnd, sStrand)
	if err != nil {
		return types.Hit{}, fmt.Errorf("subject location: %w", err)
	}
	if sLen <= 0 {
		return types.Hit{}, fmt.Errorf("subject length %d is not positive", sLen)
	}

	return types.Hit{
		Query:           query,
		Subject:         subject,
		SubjectDef:      fields[8],
		EValue:          eValue,
		SubjectCoverage: 100.0 * float64(subject.Length()) / float64(sLen),
	}, nil
}
