package menu

import "wims/internal/models"

type SubItem struct {
	Text  string
	URL   string
	Roles []models.Role
}

type Item struct {
	Icon     string
	Name     string
	URL      string
	Roles    []models.Role
	SubItems []SubItem
}

// Default returns the static navigation tree. Order is significant: the
// sidebar renders entries exactly as declared here.
func Default() []Item {
	return []Item{
		{
			Icon:  "house",
			Name:  "Home",
			URL:   "/dashboard",
			Roles: []models.Role{models.RoleAdmin, models.RoleGeneralUser},
		},
		{
			Icon:  "users",
			Name:  "User Management",
			Roles: []models.Role{models.RoleAdmin},
			SubItems: []SubItem{
				{Text: "Users", URL: "/admin/users", Roles: []models.Role{models.RoleAdmin}},
				{Text: "Departments", URL: "/admin/departments", Roles: []models.Role{models.RoleAdmin}},
			},
		},
		{
			Icon:  "flask-conical",
			Name:  "Lab Management (LIMS)",
			Roles: []models.Role{models.RoleAdmin, models.RoleLabManager, models.RoleLabAnalyst},
			SubItems: []SubItem{
				{Text: "Lab Requests", URL: "/lims/requests", Roles: []models.Role{models.RoleAdmin, models.RoleLabManager}},
				{Text: "Analysis Results", URL: "/lims/results", Roles: []models.Role{models.RoleAdmin, models.RoleLabAnalyst}},
			},
		},
		{
			Icon:  "package-2",
			Name:  "Inventory (INV)",
			Roles: []models.Role{models.RoleAdmin, models.RoleInventoryManager},
			SubItems: []SubItem{
				{Text: "Materials", URL: "/inv/materials", Roles: []models.Role{models.RoleAdmin, models.RoleInventoryManager}},
			},
		},
	}
}

func roleIn(role models.Role, roles []models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Filter keeps the entries visible to role, with sub-entries restricted by
// the same rule. The input is not mutated; declaration order is preserved.
func Filter(items []Item, role models.Role) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if !roleIn(role, item.Roles) {
			continue
		}
		if len(item.SubItems) > 0 {
			subs := make([]SubItem, 0, len(item.SubItems))
			for _, sub := range item.SubItems {
				if roleIn(role, sub.Roles) {
					subs = append(subs, sub)
				}
			}
			item.SubItems = subs
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// Find looks an entry up by name in the static tree.
func Find(items []Item, name string) (Item, bool) {
	for _, item := range items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}
