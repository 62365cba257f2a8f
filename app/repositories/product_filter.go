package repositories

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// Condition is one catalog predicate as plain data. The repository folds
// the list into the query; conditions always combine with AND.
type Condition struct {
	Expr string
	Args []any
}

// ProductFilter is the parsed catalog query. Nil fields mean "filter not
// active"; ParseProductFilter never fails, it drops what it cannot parse.
type ProductFilter struct {
	Category *string
	Team     *string
	Size     *string
	Search   *string
	IsNew    *bool
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// ParseProductFilter reads the listing query parameters. Malformed or
// non-finite price bounds and unknown isNew values are silently ignored
// rather than surfaced as errors.
func ParseProductFilter(values url.Values) ProductFilter {
	var f ProductFilter
	if v := values.Get("category"); v != "" {
		f.Category = &v
	}
	if v := values.Get("team"); v != "" {
		f.Team = &v
	}
	if v := values.Get("size"); v != "" {
		f.Size = &v
	}
	if v := values.Get("search"); v != "" {
		f.Search = &v
	}
	switch values.Get("isNew") {
	case "true":
		t := true
		f.IsNew = &t
	case "false":
		t := false
		f.IsNew = &t
	}
	f.MinPrice = parsePrice(values.Get("minPrice"))
	f.MaxPrice = parsePrice(values.Get("maxPrice"))
	f.SortBy = values.Get("sortBy")
	return f
}

func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// Conditions emits the active predicates in a fixed order. Category and
// team match exactly but case-insensitively. Size matches as one token of
// the comma-separated sizes column: the whole value, the first token, a
// middle token, or the last one, with LIKE metacharacters in the candidate
// escaped first. Search is a case-insensitive substring match on name or
// description.
func (f ProductFilter) Conditions() []Condition {
	var conds []Condition
	if f.Category != nil {
		conds = append(conds, Condition{"LOWER(category) = LOWER(?)", []any{*f.Category}})
	}
	if f.Team != nil {
		conds = append(conds, Condition{"LOWER(team) = LOWER(?)", []any{*f.Team}})
	}
	if f.Size != nil {
		token := escapeLike(*f.Size)
		conds = append(conds, Condition{
			"(sizes = ? OR sizes LIKE ? OR sizes LIKE ? OR sizes LIKE ?)",
			[]any{*f.Size, token + ",%", "%," + token + ",%", "%," + token},
		})
	}
	if f.Search != nil {
		q := "%" + strings.ToLower(escapeLike(*f.Search)) + "%"
		conds = append(conds, Condition{"(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", []any{q, q}})
	}
	if f.IsNew != nil {
		conds = append(conds, Condition{"is_new = ?", []any{*f.IsNew}})
	}
	if f.MinPrice != nil {
		conds = append(conds, Condition{"price >= ?", []any{*f.MinPrice}})
	}
	if f.MaxPrice != nil {
		conds = append(conds, Condition{"price <= ?", []any{*f.MaxPrice}})
	}
	return conds
}

// OrderClause maps the sort key; anything unknown falls back to newest.
func (f ProductFilter) OrderClause() string {
	switch f.SortBy {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	default:
		return "created_at DESC"
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
