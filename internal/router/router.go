// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "github.com/Web-Plus-Academy/lms-admin/internal/session"

// ===== ROUTE CLASSES =====

// Class controls who may reach a route.
type Class int

const (
	// ClassProtected routes require an authenticated session.
	ClassProtected Class = iota
	// ClassPublicOnly routes are for unauthenticated callers; an
	// authenticated caller is bounced to the dashboard.
	ClassPublicOnly
	// ClassNeutral routes render regardless of session state.
	ClassNeutral
)

func (c Class) String() string {
	switch c {
	case ClassProtected:
		return "protected"
	case ClassPublicOnly:
		return "public-only"
	case ClassNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// ===== ROUTE TABLE =====

// Route names. These are the only navigable destinations; anything else
// falls through to the not-found route.
const (
	RouteLogin     = "login"
	RouteDashboard = "dashboard"
	RouteRegister  = "register"
	RouteManage    = "manage"
	RoutePayslip   = "payslip"
	RouteHelp      = "help"
	RouteNotFound  = "notfound"
)

// Route is one entry in the static table.
type Route struct {
	Name  string
	Class Class
}

var table = map[string]Route{
	RouteLogin:     {Name: RouteLogin, Class: ClassPublicOnly},
	RouteDashboard: {Name: RouteDashboard, Class: ClassProtected},
	RouteRegister:  {Name: RouteRegister, Class: ClassProtected},
	RouteManage:    {Name: RouteManage, Class: ClassProtected},
	RoutePayslip:   {Name: RoutePayslip, Class: ClassProtected},
	RouteHelp:      {Name: RouteHelp, Class: ClassProtected},
	RouteNotFound:  {Name: RouteNotFound, Class: ClassNeutral},
}

// Lookup returns the route for name, if defined.
func Lookup(name string) (Route, bool) {
	r, ok := table[name]
	return r, ok
}

// Routes returns the defined route names. Order is not specified.
func Routes() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}

// ===== ADMISSION DECISIONS =====

// Action says what the shell should do with a navigation.
type Action int

const (
	// ActionRender shows the requested (or substituted) route.
	ActionRender Action = iota
	// ActionRedirect sends the caller somewhere else instead.
	ActionRedirect
)

// Decision is the outcome of admission for one navigation. When
// ClearSession is set the shell must destroy the stored session record
// before acting on the rest of the decision.
type Decision struct {
	Action       Action
	Target       string
	ClearSession bool
}

// Evaluate admits or redirects a navigation to routeName under the given
// session state. It is pure: callers own the side effects it prescribes.
func Evaluate(state session.State, routeName string) Decision {
	route, ok := Lookup(routeName)
	if !ok {
		// Unknown destination. Treat it as hostile: drop any session
		// and land on the not-found screen.
		return Decision{Action: ActionRedirect, Target: RouteNotFound, ClearSession: true}
	}

	switch route.Class {
	case ClassProtected:
		if state == session.Authenticated {
			return Decision{Action: ActionRender, Target: route.Name}
		}
		return Decision{Action: ActionRedirect, Target: RouteLogin}
	case ClassPublicOnly:
		if state == session.Authenticated {
			return Decision{Action: ActionRedirect, Target: RouteDashboard}
		}
		return Decision{Action: ActionRender, Target: route.Name}
	default:
		// Neutral catch-all. The not-found screen also clears any
		// residual record on entry.
		return Decision{Action: ActionRender, Target: route.Name, ClearSession: route.Name == RouteNotFound}
	}
}
