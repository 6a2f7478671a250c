package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ratulalahy/med-debt-collector/internal/api"
	"github.com/ratulalahy/med-debt-collector/internal/domain"
	"github.com/ratulalahy/med-debt-collector/internal/query"
	"github.com/ratulalahy/med-debt-collector/internal/repository"
)

var listKinds = []string{"patients", "campaigns", "calls", "queue", "events", "tasks", "incoming"}

type listFlags struct {
	text         string
	searchFields []string
	filters      []string
	rangeField   string
	min, max     float64
	from, to     string
	sortKey      string
	direction    string
	page, limit  int
}

func (c *cli) listCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:       "list <" + strings.Join(listKinds, "|") + ">",
		Short:     "Filter, sort and page a record collection",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := f.query(cmd)
			if err != nil {
				return err
			}
			src, err := c.app.source(cmd.Context())
			if err != nil {
				return err
			}
			page, err := listKind(cmd.Context(), src, args[0], q, f.page, f.limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.text, "q", "", "case-insensitive text search")
	fl.StringSliceVar(&f.searchFields, "search-field", nil, "restrict --q to these fields")
	fl.StringArrayVar(&f.filters, "filter", nil, "exact match field=value (repeatable, value \"all\" disables)")
	fl.StringVar(&f.rangeField, "range-field", "", "number or date field bounded by --min/--max or --from/--to")
	fl.Float64Var(&f.min, "min", 0, "inclusive lower bound of a number range")
	fl.Float64Var(&f.max, "max", 0, "inclusive upper bound of a number range")
	fl.StringVar(&f.from, "from", "", "inclusive lower bound of a date range (YYYY-MM-DD or RFC3339)")
	fl.StringVar(&f.to, "to", "", "inclusive upper bound of a date range")
	fl.StringVar(&f.sortKey, "sort", "", "sort key")
	fl.StringVar(&f.direction, "dir", string(query.Asc), "sort direction (asc|desc)")
	fl.IntVar(&f.page, "page", 1, "1-based page")
	fl.IntVar(&f.limit, "limit", api.DefaultLimit, "page size")
	return cmd
}

func (f *listFlags) query(cmd *cobra.Command) (query.Query, error) {
	q := query.Query{
		Filter: query.Predicates{Text: f.text, SearchFields: f.searchFields},
		Order:  query.Order{Key: f.sortKey, Direction: query.Direction(f.direction)},
	}

	for _, kv := range f.filters {
		field, value, ok := strings.Cut(kv, "=")
		if !ok || field == "" {
			return q, fmt.Errorf("invalid --filter %q, want field=value", kv)
		}
		if q.Filter.Categorical == nil {
			q.Filter.Categorical = make(map[string]string)
		}
		q.Filter.Categorical[field] = value
	}

	if f.rangeField == "" {
		return q, nil
	}
	r := &query.Range{Field: f.rangeField}
	if cmd.Flags().Changed("min") {
		r.Min = &f.min
	}
	if cmd.Flags().Changed("max") {
		r.Max = &f.max
	}
	var err error
	if r.From, err = optionalDate(f.from); err != nil {
		return q, err
	}
	if r.To, err = optionalDate(f.to); err != nil {
		return q, err
	}
	q.Filter.Range = r
	return q, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d.Time, nil
}

func page[T any](ctx context.Context, fetch func(context.Context) ([]T, error), schema *query.Schema[T], q query.Query, p, limit int) (any, error) {
	records, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	out, err := query.Run(records, schema, q)
	if err != nil {
		return nil, err
	}
	return api.Paginate(out, p, limit), nil
}

func listKind(ctx context.Context, src repository.Source, kind string, q query.Query, p, limit int) (any, error) {
	switch kind {
	case "patients":
		return page(ctx, src.ListPatients, query.PatientSchema(), q, p, limit)
	case "campaigns":
		return page(ctx, src.ListCampaigns, query.CampaignSchema(), q, p, limit)
	case "calls":
		return page(ctx, src.ListCallLogs, query.CallLogSchema(), q, p, limit)
	case "queue":
		return page(ctx, src.ListQueue, query.QueueSchema(), q, p, limit)
	case "events":
		return page(ctx, src.ListEvents, query.EventSchema(), q, p, limit)
	case "tasks":
		return page(ctx, src.ListTasks, query.TaskSchema(), q, p, limit)
	case "incoming":
		return page(ctx, src.ListIncomingCalls, query.IncomingCallSchema(), q, p, limit)
	}
	return nil, fmt.Errorf("unknown collection %q", kind)
}
