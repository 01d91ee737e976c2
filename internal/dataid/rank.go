package dataid

import (
	"cmp"
	"math"
	"slices"

	"dataid/internal/common"
	"dataid/value"
)

// BigDistance is added when a candidate lacks a field the query asks for.
// Such a candidate is a poor but possible match; +Inf marks an impossible one.
const BigDistance = 100000

// Candidate is an identifier together with its distance to a query.
type Candidate struct {
	ID       *DataID
	Distance float64
	// Infeasible is set when the identifier lacks a field the query
	// specifies or holds a value the query does not accept.
	Infeasible bool
}

// Feasible reports whether the candidate satisfies every field the query
// specifies.
func (c Candidate) Feasible() bool {
	return !c.Infeasible
}

// CandidateList is a ranked list of candidates, closest first.
type CandidateList []Candidate

// IDs returns the identifiers in rank order.
func (cl CandidateList) IDs() []*DataID {
	out := make([]*DataID, len(cl))
	for i, c := range cl {
		out[i] = c.ID
	}

	return out
}

// Distances returns the distances in rank order.
func (cl CandidateList) Distances() []float64 {
	out := make([]float64, len(cl))
	for i, c := range cl {
		out[i] = c.Distance
	}

	return out
}

// Best returns the closest candidate.
func (cl CandidateList) Best() (Candidate, bool) {
	return common.First(cl)
}

// Top returns at most n candidates.
func (cl CandidateList) Top(n int) CandidateList {
	if n < len(cl) {
		return cl[:n]
	}

	return cl
}

// IsAmbiguous reports whether the two closest candidates are equally distant.
func (cl CandidateList) IsAmbiguous() bool {
	return len(cl) > 1 && cl[0].Distance == cl[1].Distance
}

// Feasible returns the candidates that satisfy every specified field.
func (cl CandidateList) Feasible() CandidateList {
	var out CandidateList

	for _, c := range cl {
		if c.Feasible() {
			out = append(out, c)
		}
	}

	return out
}

// Rank orders ids by their distance to q, closest first. Ties keep the
// identifier order.
//
// A field the query leaves out or wildcards adds the candidate's own weight:
// the ordinal of an enumeration member, a number as is, the length of a tuple
// (4 for a wavelength range).
// A field the query specifies adds the value's Distance when it has one, the
// value itself when numeric, and nothing otherwise. A candidate missing a
// specified field gets BigDistance; one whose value is not acceptable gets +Inf.
func (q *Query) Rank(ids []*DataID) (CandidateList, error) {
	sorted := slices.Clone(ids)
	if err := SortIDs(sorted); err != nil {
		return nil, err
	}

	keySet := make(map[string]struct{}, len(q.fields))
	for _, k := range q.fields {
		keySet[k] = struct{}{}
	}

	for _, id := range sorted {
		for k := range id.values {
			keySet[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	ranked := make(CandidateList, 0, len(sorted))
	for _, id := range sorted {
		d, ok := q.distance(id, keys)
		ranked = append(ranked, Candidate{ID: id, Distance: d, Infeasible: !ok})
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return ranked, nil
}

// Sort is Rank returning parallel slices.
func (q *Query) Sort(ids []*DataID) ([]*DataID, []float64, error) {
	ranked, err := q.Rank(ids)
	if err != nil {
		return nil, nil, err
	}

	return ranked.IDs(), ranked.Distances(), nil
}

// distance also reports whether id satisfies every field q specifies.
func (q *Query) distance(id *DataID, keys []string) (float64, bool) {
	var distance float64

	for _, k := range keys {
		qv, specified := q.values[k]
		if !specified || value.IsWildcard(qv) {
			distance += weight(id.values[k])
			continue
		}

		idVal, ok := id.values[k]
		if !ok {
			return distance + BigDistance, false
		}

		if d, ok := idVal.(value.Distancer); ok {
			gap := minDistance(d, qv)
			if math.IsInf(gap, 1) {
				return gap, false
			}

			distance += gap

			continue
		}

		if !q.matchValue(k, idVal) {
			return math.Inf(1), false
		}

		if n, ok := value.Numeric(idVal); ok {
			distance += n
		}
	}

	return distance, true
}

func weight(v any) float64 {
	if n, ok := value.Numeric(v); ok {
		return n
	}

	if s, ok := v.(value.Sized); ok {
		return float64(s.Len())
	}

	return 0
}

func minDistance(d value.Distancer, qv any) float64 {
	best := math.Inf(1)

	for _, alt := range value.Alternatives(qv) {
		best = min(best, d.Distance(alt))
	}

	return best
}
