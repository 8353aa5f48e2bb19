// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todoapi

// User is a single person known to the system.
type User struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// NewUser holds the caller-supplied fields of a User.  It is what
// gets created, and what replaces an existing user.
type NewUser struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// RecordID returns the user's id.
func (u User) RecordID() int {
	return u.ID
}

// Build produces the User with this content and id.
func (n NewUser) Build(id int) User {
	return User{ID: id, Name: n.Name, Email: n.Email}
}

// Todo is a single task, optionally owned by a user.
type Todo struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Done  bool   `json:"done" yaml:"done"`

	// UserID names the owning user, or is nil.  The user need
	// not exist.
	UserID *int `json:"userId" yaml:"userId"`
}

// NewTodo holds the caller-supplied fields of a Todo.  Done and
// UserID are pointers so that "absent" can be told apart from a
// zero value.
type NewTodo struct {
	Title  string `mapstructure:"title"`
	Done   *bool  `mapstructure:"done"`
	UserID *int   `mapstructure:"userId"`
}

// RecordID returns the todo's id.
func (t Todo) RecordID() int {
	return t.ID
}

// Build produces the Todo with this content and id, filling in
// defaults for absent fields.
func (n NewTodo) Build(id int) Todo {
	todo := Todo{ID: id, Title: n.Title}
	if n.Done != nil {
		todo.Done = *n.Done
	}
	if n.UserID != nil {
		userID := *n.UserID
		todo.UserID = &userID
	}
	return todo
}

// NewTodoFrom returns the NewTodo that would rebuild todo.
func NewTodoFrom(todo Todo) NewTodo {
	done := todo.Done
	n := NewTodo{Title: todo.Title, Done: &done}
	if todo.UserID != nil {
		userID := *todo.UserID
		n.UserID = &userID
	}
	return n
}

// NewUserFrom returns the NewUser that would rebuild user.
func NewUserFrom(user User) NewUser {
	return NewUser{Name: user.Name, Email: user.Email}
}

// IntPtr returns a pointer to a copy of i, for filling in optional
// fields.
func IntPtr(i int) *int {
	return &i
}

// BoolPtr returns a pointer to a copy of b.
func BoolPtr(b bool) *bool {
	return &b
}
