package repository

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/query"
)

// sqlCondition is a WHERE fragment with its positional parameters.
type sqlCondition struct {
	Clause string
	Params []any
}

type placeholders struct {
	params []any
}

func (p *placeholders) next(v any) string {
	p.params = append(p.params, v)
	return fmt.Sprintf("$%d", len(p.params))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// compileWhere turns predicates into a conjunction over the events table aliased as e.
func compileWhere(preds []query.Predicate, ph *placeholders) (sqlCondition, error) {
	start := len(ph.params)
	clauses := make([]string, 0, len(preds))

	for _, p := range preds {
		var c string
		switch p.Kind {
		case query.InitiatorIn:
			c = "e.initiator_id = ANY(" + ph.next(pq.Array(p.Strings)) + ")"
		case query.IDIn:
			c = "e.id = ANY(" + ph.next(pq.Array(p.Strings)) + ")"
		case query.StateIn:
			c = "e.state = ANY(" + ph.next(pq.Array(p.Strings)) + ")"
		case query.CategoryIn:
			c = "e.category_id = ANY(" + ph.next(pq.Array(p.Strings)) + ")"
		case query.PaidEq:
			c = "e.paid = " + ph.next(p.Bool)
		case query.DateAfter:
			c = "e.event_date > " + ph.next(p.Time)
		case query.DateFrom:
			c = "e.event_date >= " + ph.next(p.Time)
		case query.DateBefore:
			c = "e.event_date < " + ph.next(p.Time)
		case query.DateUntil:
			c = "e.event_date <= " + ph.next(p.Time)
		case query.TextContains:
			pattern := ph.next("%" + likeEscaper.Replace(p.Text) + "%")
			c = "(e.annotation ILIKE " + pattern + " OR e.description ILIKE " + pattern + ")"
		case query.HasCapacity:
			c = `(e.participant_limit = 0 OR e.participant_limit > (
				SELECT COUNT(*) FROM requests r
				WHERE r.event_id = e.id AND r.status = ` + ph.next(string(domain.RequestStatusConfirmed)) + `))`
		default:
			return sqlCondition{}, fmt.Errorf("unsupported predicate %s", p.Kind)
		}
		clauses = append(clauses, c)
	}

	if len(clauses) == 0 {
		return sqlCondition{}, nil
	}
	return sqlCondition{
		Clause: strings.Join(clauses, " AND "),
		Params: ph.params[start:],
	}, nil
}

func buildFind(q query.EventQuery) (string, []any, error) {
	var ph placeholders
	where, err := compileWhere(q.Predicates, &ph)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(selectEvent)
	if where.Clause != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where.Clause)
	}

	switch q.Order {
	case query.OrderByEventDate:
		sb.WriteString(" ORDER BY e.event_date, e.id")
	default:
		sb.WriteString(" ORDER BY e.id")
	}

	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + ph.next(q.Limit))
	}
	if q.Offset > 0 {
		sb.WriteString(" OFFSET " + ph.next(q.Offset))
	}

	return sb.String(), ph.params, nil
}
