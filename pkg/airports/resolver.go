package airports

import "strings"

// Resolver maps free-form location input (airport code, metro code,
// or a city/airport name in Russian or English) to IATA codes.
//
// Resolution is tiered and the first tier with a hit wins outright:
//  1. exact airport code
//  2. exact metro/city code -> member airports
//  3. substring of an airport display name
//  4. substring of a city display name -> member airports
//
// Tiers are never merged; an input that is both a valid code and part
// of some unrelated city name resolves through tier 1.
type Resolver struct {
	byCode     map[string]string
	byCityCode map[string][]string
}

// NewResolver builds the lookup indexes over the static tables.
func NewResolver() *Resolver {
	r := &Resolver{
		byCode:     make(map[string]string, len(Airports)),
		byCityCode: make(map[string][]string, len(Cities)),
	}
	for _, a := range Airports {
		r.byCode[strings.ToLower(a.IATA)] = a.IATA
	}
	for _, c := range Cities {
		r.byCityCode[strings.ToLower(c.Code)] = c.Airports
	}
	return r
}

// ResolveAll returns every airport code the query can stand for, or an
// empty slice when nothing matches.
func (r *Resolver) ResolveAll(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	if code, ok := r.byCode[q]; ok {
		return []string{code}
	}

	if members, ok := r.byCityCode[q]; ok && len(members) > 0 {
		return append([]string(nil), members...)
	}

	var matches []string
	for _, a := range Airports {
		if strings.Contains(strings.ToLower(a.NameRU), q) ||
			strings.Contains(strings.ToLower(a.NameEN), q) {
			matches = append(matches, a.IATA)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	for _, c := range Cities {
		if strings.Contains(strings.ToLower(c.NameRU), q) ||
			strings.Contains(strings.ToLower(c.NameEN), q) {
			if len(c.Airports) > 0 {
				return append([]string(nil), c.Airports...)
			}
		}
	}

	return nil
}

// ResolveOne returns the first code ResolveAll would yield.
func (r *Resolver) ResolveOne(query string) (string, bool) {
	codes := r.ResolveAll(query)
	if len(codes) == 0 {
		return "", false
	}
	return codes[0], true
}
