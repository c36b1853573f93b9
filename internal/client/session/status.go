package session

import "github.com/dmitrijs2005/trainerhub/internal/client/models"

// Status is the lifecycle state of the session.
type Status int

const (
	StatusRestoring Status = iota
	StatusUnauthenticated
	StatusAuthenticating
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusRestoring:
		return "restoring"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Status          Status
}

// Tree names the command set a consumer should mount.
type Tree string

const (
	TreeLoading  Tree = "loading"
	TreeAuth     Tree = "auth"
	TreePersonal Tree = "personal"
	TreeStudent  Tree = "student"
)

// NavigationTree picks the tree for snap: loading while IsLoading, auth
// when logged out, otherwise by the user's role.
func NavigationTree(snap Snapshot) Tree {
	switch {
	case snap.IsLoading:
		return TreeLoading
	case !snap.IsAuthenticated:
		return TreeAuth
	case snap.User.Role == models.RolePersonal:
		return TreePersonal
	default:
		return TreeStudent
	}
}
