// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todoapi

// Seed is the initial content of a Service.  Records keep their ids
// and order; a Service allocates new ids above the highest seeded one.
type Seed struct {
	Users []User `yaml:"users"`
	Todos []Todo `yaml:"todos"`
}

// DefaultSeed returns the records a freshly started server holds.
func DefaultSeed() Seed {
	return Seed{
		Users: []User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Brian", Email: "brian@example.com"},
		},
		Todos: []Todo{
			{ID: 1, Title: "Buy milk", Done: false, UserID: IntPtr(1)},
			{ID: 2, Title: "Write Swagger doc", Done: true, UserID: IntPtr(2)},
		},
	}
}
