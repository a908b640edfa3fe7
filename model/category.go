// model/category.go
package model

// Category maps a display name to its URL path segment. The set is fixed;
// items carry a free-text category field that is only reachable through
// browsing when it matches one of these names exactly.
type Category struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var Categories = []Category{
	{Name: "Home Appliances", Path: "home-appliances"},
	{Name: "Electronics", Path: "electronics"},
	{Name: "Furniture", Path: "furniture"},
	{Name: "Event Supplies", Path: "event-supplies"},
	{Name: "Mobile Devices", Path: "mobile-devices"},
	{Name: "Office Equipment", Path: "office-equipment"},
	{Name: "Automobiles", Path: "automobiles"},
	{Name: "Tools & Equipment", Path: "tools-equipment"},
}

func CategoryByPath(path string) (Category, bool) {
	for _, c := range Categories {
		if c.Path == path {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryPath returns the path for a display name, or "" when the name is
// not in the fixed set.
func CategoryPath(name string) string {
	for _, c := range Categories {
		if c.Name == name {
			return c.Path
		}
	}
	return ""
}
