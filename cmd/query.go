package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vnkhanh/e-academy-backend/services"
	"github.com/vnkhanh/e-academy-backend/utils"
)

var queryFlags struct {
	types      []string
	access     []string
	categories []string
	search     string
	sort       string
	yearMin    int
	yearMax    int
	latencyMs  int
	jsonOut    bool
}

// queryCmd chạy truy vấn catalog ngay trên terminal, tiện để kiểm tra bộ lọc
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter and sort the sample catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return runQuery(ctx)
	},
}

func init() {
	f := queryCmd.Flags()
	f.StringSliceVar(&queryFlags.types, "type", nil, "resource types (paper, book, video, course)")
	f.StringSliceVar(&queryFlags.access, "access", nil, "access levels (open, student, faculty, restricted)")
	f.StringSliceVar(&queryFlags.categories, "category", nil, "category names or slugs")
	f.StringVarP(&queryFlags.search, "query", "q", "", "search text")
	f.StringVar(&queryFlags.sort, "sort", "relevance", "relevance, newest, oldest or citations")
	f.IntVar(&queryFlags.yearMin, "year-min", 0, "minimum year (inclusive)")
	f.IntVar(&queryFlags.yearMax, "year-max", 0, "maximum year (inclusive)")
	f.IntVar(&queryFlags.latencyMs, "latency-ms", 0, "simulated data source latency")
	f.BoolVar(&queryFlags.jsonOut, "json", false, "print JSON")
}

func runQuery(ctx context.Context) error {
	logger, err := utils.NewLogger("warn", false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	values := url.Values{}
	values["type"] = queryFlags.types
	values["access"] = queryFlags.access
	values["category"] = queryFlags.categories
	values.Set("q", queryFlags.search)
	values.Set("sort", queryFlags.sort)
	if queryFlags.yearMin != 0 {
		values.Set("year_min", fmt.Sprint(queryFlags.yearMin))
	}
	if queryFlags.yearMax != 0 {
		values.Set("year_max", fmt.Sprint(queryFlags.yearMax))
	}

	store := services.NewSampleCatalogStore()
	criteria := services.CriteriaFromQuery(values, time.Now(), store.ResolveCategory)

	source := services.NewMockCatalogSource(store, services.ScaleLatency(queryFlags.latencyMs))
	loader := services.NewBrowseLoader(source, logger)
	defer loader.Close()

	session := services.NewBrowseSession(loader, criteria)
	session.Dispatch(ctx, services.Action{Kind: services.ActionSetCriteria, Criteria: criteria})
	loader.Wait()

	state := session.State()
	if state.LastError != "" {
		logger.Warn("query failed", zap.String("error", state.LastError))
	}

	if queryFlags.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Resources)
	}
	fmt.Printf("Showing %d resources\n", len(state.Resources))
	for _, r := range state.Resources {
		d := utils.Display(r)
		fmt.Printf("%-3s %-7s %d  %s\n     %s\n", r.ID, r.Type, r.Year, r.Title, d.Authors)
	}
	return nil
}
