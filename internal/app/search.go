package app

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wirescreen/wirescreen-go/pkg/wirescreen"
)

// searchFlags holds the parsed flag values of the search commands.
type searchFlags struct {
	*pflag.FlagSet

	numResults int
	public     bool
	government bool
	operating  bool
	region     string
}

// SearchCommand runs a free-text search.
type SearchCommand struct {
	*baseCommand
}

func (c *SearchCommand) Synopsis() string {
	return "Search companies and people"
}

func (c *SearchCommand) Help() string {
	return `Usage: wirescreen search [options] <query>

  Searches companies and people matching the query.

` + c.flags().FlagUsages()
}

func (c *SearchCommand) flags() *searchFlags {
	fs := c.flagSet("search")
	f := &searchFlags{FlagSet: fs}
	fs.IntVarP(&f.numResults, "num-results", "n", 0, "Maximum number of results")
	return f
}

func (c *SearchCommand) Run(args []string) int {
	f := c.flags()
	if !c.parse(f.FlagSet, args) {
		return 1
	}

	query := strings.TrimSpace(strings.Join(f.Args(), " "))
	if query == "" {
		c.UI.Error("a search query is required")
		return 1
	}

	params := wirescreen.SearchParams{Query: query}
	if f.Changed("num-results") {
		params.NumResults = wirescreen.Int(f.numResults)
	}

	return c.execute(f.FlagSet, func(ctx context.Context, api API) (any, error) {
		return api.Search(ctx, params)
	})
}

// AdvancedSearchCommand runs a filtered company search.
type AdvancedSearchCommand struct {
	*baseCommand
}

func (c *AdvancedSearchCommand) Synopsis() string {
	return "Search companies with filters"
}

func (c *AdvancedSearchCommand) Help() string {
	return `Usage: wirescreen advanced-search [options] <query>

  Searches companies matching the query. Filters are only sent when given,
  so --public=false and leaving out --public are different requests.

` + c.flags().FlagUsages()
}

func (c *AdvancedSearchCommand) flags() *searchFlags {
	fs := c.flagSet("advanced-search")
	f := &searchFlags{FlagSet: fs}
	fs.IntVarP(&f.numResults, "num-results", "n", 0, "Maximum number of results")
	fs.BoolVar(&f.public, "public", false, "Limit to publicly listed companies")
	fs.BoolVar(&f.government, "government", false, "Limit to government-linked companies")
	fs.BoolVar(&f.operating, "operating", false, "Limit to operating companies")
	fs.StringVar(&f.region, "region", "", "Limit to a region, e.g. US or CN")
	return f
}

func (c *AdvancedSearchCommand) Run(args []string) int {
	f := c.flags()
	if !c.parse(f.FlagSet, args) {
		return 1
	}

	query := strings.TrimSpace(strings.Join(f.Args(), " "))
	if query == "" {
		c.UI.Error("a search query is required")
		return 1
	}

	params := wirescreen.AdvancedSearchParams{Query: query}
	if f.Changed("num-results") {
		params.NumResults = wirescreen.Int(f.numResults)
	}
	if f.Changed("public") {
		params.LimitToPublic = wirescreen.Bool(f.public)
	}
	if f.Changed("government") {
		params.LimitToGovernment = wirescreen.Bool(f.government)
	}
	if f.Changed("operating") {
		params.LimitToOperating = wirescreen.Bool(f.operating)
	}
	if f.Changed("region") {
		params.Region = wirescreen.String(f.region)
	}

	return c.execute(f.FlagSet, func(ctx context.Context, api API) (any, error) {
		return api.AdvancedSearch(ctx, params)
	})
}
