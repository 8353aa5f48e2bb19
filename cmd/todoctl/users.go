// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/urfave/cli"
)

var userFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "name",
		Usage: "display name",
	},
	cli.StringFlag{
		Name:  "email",
		Usage: "email address",
	},
}

var listUsers = cli.Command{
	Name:  "users",
	Usage: "list all users",
	Action: func(c *cli.Context) error {
		svc, err := service(c)
		if err != nil {
			return err
		}
		users, err := svc.Users()
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, users)
	},
}

var getUser = cli.Command{
	Name:      "user",
	Usage:     "show one user",
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
		user, err := svc.User(id)
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, user)
	},
}

var addUser = cli.Command{
	Name:  "add-user",
	Usage: "create a user",
	Flags: userFlags,
	Action: func(c *cli.Context) error {
		svc, err := service(c)
		if err != nil {
			return err
		}
		user, err := svc.CreateUser(todoapi.NewUser{
			Name:  c.String("name"),
			Email: c.String("email"),
		})
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, user)
	},
}

var updateUser = cli.Command{
	Name:      "update-user",
	Usage:     "change some fields of a user",
	ArgsUsage: "id",
	Flags:     userFlags,
	Action: func(c *cli.Context) error {
		id, err := idArg(c)
		if err != nil {
			return err
		}
		svc, err := service(c)
		if err != nil {
			return err
		}
		user, err := svc.User(id)
		if err != nil {
			return err
		}
		fields := todoapi.NewUserFrom(user)
		if c.IsSet("name") {
			fields.Name = c.String("name")
		}
		if c.IsSet("email") {
			fields.Email = c.String("email")
		}
		user, err = svc.ReplaceUser(id, fields)
		if err != nil {
			return err
		}
		return printYAML(c.App.Writer, user)
	},
}

var deleteUser = cli.Command{
	Name:      "delete-user",
	Usage:     "delete a user, leaving their todos",
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
		return svc.DeleteUser(id)
	},
}
