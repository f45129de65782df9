package menu

// NavState holds the sidebar toggles for one browser session.
// At most one submenu is expanded at a time.
type NavState struct {
	SidebarOpen bool
	OpenSubmenu string
}

func DefaultNav() NavState {
	return NavState{SidebarOpen: true}
}

// ToggleSidebar flips the sidebar; closing it also collapses any open submenu.
func (n *NavState) ToggleSidebar() {
	n.SidebarOpen = !n.SidebarOpen
	if !n.SidebarOpen {
		n.OpenSubmenu = ""
	}
}

// HandleClick applies a click on a top-level entry. Entries with sub-entries
// toggle their submenu (forcing the sidebar open); entries with a direct URL
// collapse any open submenu and return the URL to navigate to. The returned
// string is empty when the click only changed toggle state.
func (n *NavState) HandleClick(item Item) string {
	if len(item.SubItems) > 0 {
		if !n.SidebarOpen {
			n.SidebarOpen = true
		}
		if n.OpenSubmenu == item.Name {
			n.OpenSubmenu = ""
		} else {
			n.OpenSubmenu = item.Name
		}
		return ""
	}
	if item.URL != "" {
		n.OpenSubmenu = ""
		return item.URL
	}
	return ""
}
