package models

// NoDepartment is shown in the user table when a user is unaffiliated.
const NoDepartment = "N/A"

// UserListView is the denormalized row shown in the user admin table.
// It is rebuilt from User (+ joined Department) on every read, never stored.
type UserListView struct {
	ID             uint
	LoginID        string
	Name           string
	Email          string
	RoleName       string
	DepartmentName string
	IsActive       bool
}

// BuildUserList projects users into table rows. Department must already be
// preloaded on each user for the department name to resolve.
func BuildUserList(users []User) []UserListView {
	views := make([]UserListView, 0, len(users))
	for _, u := range users {
		v := UserListView{
			ID:             u.ID,
			LoginID:        u.LoginID,
			RoleName:       u.Role.String(),
			DepartmentName: NoDepartment,
			IsActive:       u.IsActive,
		}
		if u.Name != nil {
			v.Name = *u.Name
		}
		if u.Email != nil {
			v.Email = *u.Email
		}
		if u.Department != nil {
			v.DepartmentName = u.Department.Name
		}
		views = append(views, v)
	}
	return views
}
