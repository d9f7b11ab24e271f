package handler

import "github.com/tradeco/board/internal/core/domain"

// RolePaths are the routes that belong to one role.
type RolePaths struct {
	Label          string
	Login          string
	LoginAction    string
	Register       string
	RegisterAction string
	Dashboard      string
}

var rolePaths = map[domain.Role]RolePaths{
	domain.RoleClient: {
		Label:          "Client",
		Login:          "/client/login",
		LoginAction:    "/login_client",
		Register:       "/client/register",
		RegisterAction: "/register_client",
		Dashboard:      "/client/dashboard",
	},
	domain.RoleTradesman: {
		Label:          "Tradesman",
		Login:          "/tradesman/login",
		LoginAction:    "/login_tradesman",
		Register:       "/tradesman/register",
		RegisterAction: "/register_tradesman",
		Dashboard:      "/tradesman/dashboard",
	},
	domain.RoleReader: {
		Label:          "Reader",
		Login:          "/sign_in",
		LoginAction:    "/sign_in",
		Register:       "/sign_up",
		RegisterAction: "/sign_up",
		Dashboard:      "/shelf",
	},
}

// PathsFor returns the routes of role. Unknown roles get the role picker.
func PathsFor(role domain.Role) RolePaths {
	if p, ok := rolePaths[role]; ok {
		return p
	}
	return RolePaths{Login: "/enter", Register: "/enter", Dashboard: "/enter"}
}
