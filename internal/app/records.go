package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Record kinds served by RecordCommand.
const (
	KindOrganization = "organization"
	KindPerson       = "person"
)

// RecordCommand fetches organization or person records by uid.
// With Many unset it takes exactly one uid.
type RecordCommand struct {
	*baseCommand

	Kind string
	Many bool
}

func (c *RecordCommand) name() string {
	if c.Many {
		return c.Kind + "s"
	}
	return c.Kind
}

func (c *RecordCommand) Synopsis() string {
	if c.Many {
		return fmt.Sprintf("Fetch several %s records by uid", c.Kind)
	}
	return fmt.Sprintf("Fetch one %s record by uid", c.Kind)
}

func (c *RecordCommand) Help() string {
	usage := fmt.Sprintf("Usage: wirescreen %s [options] <uid>", c.name())
	if c.Many {
		usage += " [<uid>...]"
	}
	return usage + fmt.Sprintf(`

  %s

`, c.Synopsis()) + c.flagSet(c.name()).FlagUsages()
}

func (c *RecordCommand) Run(args []string) int {
	fs := c.flagSet(c.name())
	if !c.parse(fs, args) {
		return 1
	}

	switch {
	case fs.NArg() == 0:
		c.UI.Error("at least one uid is required")
		return 1
	case !c.Many && fs.NArg() > 1:
		c.UI.Error(fmt.Sprintf("%s takes exactly one uid; use %ss for several", c.Kind, c.Kind))
		return 1
	}

	uids, err := parseUIDs(fs.Args())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return c.execute(fs, func(ctx context.Context, api API) (any, error) {
		return c.fetch(ctx, api, uids)
	})
}

func (c *RecordCommand) fetch(ctx context.Context, api API, uids []uuid.UUID) (any, error) {
	switch {
	case c.Kind == KindOrganization && c.Many:
		return api.GetOrganizations(ctx, uids)
	case c.Kind == KindOrganization:
		return api.GetOrganization(ctx, uids[0])
	case c.Kind == KindPerson && c.Many:
		return api.GetPersons(ctx, uids)
	case c.Kind == KindPerson:
		return api.GetPerson(ctx, uids[0])
	default:
		return nil, fmt.Errorf("unknown record kind %q", c.Kind)
	}
}
