package community

import (
	"net/url"
	"strconv"
)

// Query is an arbitrary key/value mapping sent as the list query string.
type Query map[string]string

// NewQuery builds the usual page + sort query.
func NewQuery(page int, sort SortSpec) Query {
	return Query{}.WithPage(page).WithSort(sort)
}

func (q Query) clone() Query {
	out := make(Query, len(q)+2)
	for k, v := range q {
		out[k] = v
	}
	return out
}

func (q Query) WithPage(page int) Query {
	out := q.clone()
	out["page"] = strconv.Itoa(page)
	return out
}

func (q Query) WithSort(sort SortSpec) Query {
	out := q.clone()
	if sort.Direction != "" {
		out["sort"] = sort.Direction
	}
	if sort.Field != "" {
		out["field"] = sort.Field
	}
	return out
}

// Encode returns the query string with keys sorted, empty when q is empty.
func (q Query) Encode() string {
	vals := url.Values{}
	for k, v := range q {
		vals.Set(k, v)
	}
	return vals.Encode()
}
