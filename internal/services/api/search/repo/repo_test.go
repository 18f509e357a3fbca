package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"socsearch/internal/platform/store"
)

type stubRows struct {
	rows [][]any
	i    int
}

func (r *stubRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.rows[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan arity %d != %d", len(dest), len(row))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *[]byte:
			*d = []byte(v.(string))
		default:
			return fmt.Errorf("unsupported scan dest %T", dest[i])
		}
	}
	return nil
}

func (r *stubRows) Err() error        { return nil }
func (r *stubRows) Close()            {}
func (r *stubRows) Columns() []string { return nil }

type stubQueryer struct {
	lastSQL  string
	lastArgs []any
	rows     [][]any
}

func (s *stubQueryer) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return nil, nil
}

func (s *stubQueryer) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	s.lastSQL, s.lastArgs = sql, args
	return &stubRows{rows: s.rows}, nil
}

func (s *stubQueryer) QueryRow(ctx context.Context, sql string, args ...any) store.Row { return nil }

func candidateRow() []any {
	return []any{
		"53-7051.00", "Industrial Truck and Tractor Operators", "Operate industrial trucks.",
		`["Forklift Operator"]`,
		"53-7000", "Material Moving Workers",
		"53", "Transportation and Material Moving",
	}
}

func TestExact_MatchesAllThreePredicates(t *testing.T) {
	t.Parallel()

	q := &stubQueryer{rows: [][]any{candidateRow()}}
	r := NewPG().Bind(q)

	out, err := r.Exact(context.Background(), "forklift", RetrievalCap)
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if len(out) != 1 || out[0].AlternativeTitles[0] != "Forklift Operator" {
		t.Fatalf("out = %+v", out)
	}
	for _, want := range []string{"ilike", "jsonb_array_elements_text", "plainto_tsquery", "order by o.code"} {
		if !strings.Contains(q.lastSQL, want) {
			t.Fatalf("sql missing %q: %s", want, q.lastSQL)
		}
	}
}

func TestExact_ClampsLimit(t *testing.T) {
	t.Parallel()

	q := &stubQueryer{}
	r := NewPG().Bind(q)

	if _, err := r.Exact(context.Background(), "x", 5000); err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if q.lastArgs[1] != RetrievalCap {
		t.Fatalf("limit = %v, want %d", q.lastArgs[1], RetrievalCap)
	}

	if _, err := r.Exact(context.Background(), "x", 0); err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if q.lastArgs[1] != RetrievalCap {
		t.Fatalf("limit = %v, want %d", q.lastArgs[1], RetrievalCap)
	}
}

func TestFuzzy_OrdersBySimilarity(t *testing.T) {
	t.Parallel()

	q := &stubQueryer{rows: [][]any{candidateRow()}}
	r := NewPG().Bind(q)

	out, err := r.Fuzzy(context.Background(), "forklift operater", 50)
	if err != nil {
		t.Fatalf("Fuzzy: %v", err)
	}
	if len(out) != 1 || out[0].Code != "53-7051.00" {
		t.Fatalf("out = %+v", out)
	}
	if !strings.Contains(q.lastSQL, "similarity(o.searchable_text, $1) > 0.1") {
		t.Fatalf("similarity floor missing: %s", q.lastSQL)
	}
	if !strings.Contains(q.lastSQL, "order by similarity(o.searchable_text, $1) desc, o.code") {
		t.Fatalf("best-first ordering missing: %s", q.lastSQL)
	}
	if q.lastArgs[1] != 50 {
		t.Fatalf("limit = %v, want 50", q.lastArgs[1])
	}
}
