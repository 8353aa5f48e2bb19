// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/urfave/cli"
)

var listTodos = cli.Command{
	Name:  "todos",
	Usage: "list todos",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "user",
			Usage: "only list todos owned by this user",
		},
	},
	Action: func(c *cli.Context) error {
		svc, err := service(c)
		if err != nil {
			return err
		}
		var q todoapi.TodoQuery
		if c.IsSet("user") {
			q.UserID = todoapi.IntPtr(c.Int("user"))
		}
		todos, err := svc.Todos(q)
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, todos)
	},
}

var getTodo = cli.Command{
	Name:      "todo",
	Usage:     "show one todo",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		id, err := idArg(c)
		if err != nil {
			return err
		}
		svc, err := service(c)
		if err != nil {
			return err
		}
		todo, err := svc.Todo(id)
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, todo)
	},
}

var addTodo = cli.Command{
	Name:  "add-todo",
	Usage: "create a todo",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "title",
			Usage: "what to do",
		},
		cli.BoolFlag{
			Name:  "done",
			Usage: "create it already done",
		},
		cli.IntFlag{
			Name:  "user",
			Usage: "owning user id",
		},
	},
	Action: func(c *cli.Context) error {
		svc, err := service(c)
		if err != nil {
			return err
		}
		fields := todoapi.NewTodo{Title: c.String("title")}
		if c.IsSet("done") {
			fields.Done = todoapi.BoolPtr(c.Bool("done"))
		}
		if c.IsSet("user") {
			fields.UserID = todoapi.IntPtr(c.Int("user"))
		}
		todo, err := svc.CreateTodo(fields)
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, todo)
	},
}

var updateTodo = cli.Command{
	Name:      "update-todo",
	Usage:     "change some fields of a todo",
	ArgsUsage: "id",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "title",
			Usage: "new title",
		},
		cli.BoolTFlag{
			Name:  "done",
			Usage: "mark done (--done=false to reopen)",
		},
		cli.IntFlag{
			Name:  "user",
			Usage: "new owning user id",
		},
		cli.BoolFlag{
			Name:  "no-user",
			Usage: "remove the owning user",
		},
	},
	Action: func(c *cli.Context) error {
		return changeTodo(c, func(fields *todoapi.NewTodo) {
			if c.IsSet("title") {
				fields.Title = c.String("title")
			}
			if c.IsSet("done") {
				fields.Done = todoapi.BoolPtr(c.BoolT("done"))
			}
			if c.IsSet("user") {
				fields.UserID = todoapi.IntPtr(c.Int("user"))
			}
			if c.Bool("no-user") {
				fields.UserID = nil
			}
		})
	},
}

var markDone = cli.Command{
	Name:      "done",
	Usage:     "mark a todo done",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		return changeTodo(c, func(fields *todoapi.NewTodo) {
			fields.Done = todoapi.BoolPtr(true)
		})
	},
}

var deleteTodo = cli.Command{
	Name:      "delete-todo",
	Usage:     "delete a todo",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		id, err := idArg(c)
		if err != nil {
			return err
		}
		svc, err := service(c)
		if err != nil {
			return err
		}
		return svc.DeleteTodo(id)
	},
}

// changeTodo fetches the todo named on the command line, applies
// change to its fields, and writes the whole thing back.
func changeTodo(c *cli.Context, change func(*todoapi.NewTodo)) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	svc, err := service(c)
	if err != nil {
		return err
	}
	todo, err := svc.Todo(id)
	if err != nil {
		return err
	}
	fields := todoapi.NewTodoFrom(todo)
	change(&fields)
	todo, err = svc.ReplaceTodo(id, fields)
	if err != nil {
		return err
	}
	return printYAML(c.App.Writer, todo)
}
