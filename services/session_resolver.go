package services

import "strings"

// Route classes for the page-level gate. Public routes are reachable by
// anyone, child routes require a stored device/child session, everything else
// requires a parent session.
const (
	RoutePublic = "public"
	RouteChild  = "child"
	RouteParent = "parent"
)

// Decision is the outcome of resolving a page request. RedirectTo is empty
// when the request may proceed. ClearChildSession is set when a child route
// was hit with a broken payload: the stored state must be dropped before
// redirecting, never rendered partially.
type Decision struct {
	RedirectTo        string
	ClearChildSession bool
}

// SessionResolver decides, per page request, which of the three identities
// applies and where the request should land. It is a pure gate: no side
// effects beyond the decision it returns.
type SessionResolver struct{}

func NewSessionResolver() *SessionResolver {
	return &SessionResolver{}
}

var publicRoutes = map[string]bool{
	"/login":       true,
	"/signup":      true,
	"/child-login": true,
}

var childRoutes = map[string]bool{
	"/child-dashboard": true,
}

// Classify maps a path onto its route class. Unknown paths default to the
// parent class, the same way the original gated everything but the listed
// public pages.
func (r *SessionResolver) Classify(path string) string {
	path = normalizePath(path)
	if publicRoutes[path] {
		return RoutePublic
	}
	if childRoutes[path] {
		return RouteChild
	}
	return RouteParent
}

// Resolve applies the gate rules:
//   - child route without a valid stored child session -> /child-login,
//     clearing whatever partial state the client holds;
//   - parent route without a parent session -> /login;
//   - auth route with a parent session -> /dashboard;
//   - root with a parent session -> /dashboard.
func (r *SessionResolver) Resolve(path string, hasParentSession, hasChildSession bool) Decision {
	path = normalizePath(path)

	switch r.Classify(path) {
	case RouteChild:
		if !hasChildSession {
			return Decision{RedirectTo: "/child-login", ClearChildSession: true}
		}
		return Decision{}
	case RoutePublic:
		if hasParentSession {
			return Decision{RedirectTo: "/dashboard"}
		}
		return Decision{}
	default:
		if !hasParentSession {
			return Decision{RedirectTo: "/login"}
		}
		if path == "/" {
			return Decision{RedirectTo: "/dashboard"}
		}
		return Decision{}
	}
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
