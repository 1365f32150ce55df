package app

import (
	"fmt"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// invariantRoutes is an in-process sdk.InvariantRegistry keyed by module/route.
type invariantRoutes map[string]sdk.Invariant

var _ sdk.InvariantRegistry = invariantRoutes{}

// RegisterRoute implements sdk.InvariantRegistry
func (r invariantRoutes) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r[moduleName+"/"+route] = invar
}

func (r invariantRoutes) assert(ctx sdk.Context) error {
	routes := make([]string, 0, len(r))
	for route := range r {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	for _, route := range routes {
		if msg, broken := r[route](ctx); broken {
			return fmt.Errorf("invariant %s broken: %s", route, msg)
		}
	}
	return nil
}
