// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Todoctl manages users and todos on a running todoapid from the
// command line.  Records are printed as YAML.
//
//     todoctl --url http://localhost:3000/ add-todo --title "Buy milk" --user 1
//     todoctl todos --user 1
//     todoctl done 3
//
// It also includes a small load generator:
//
//     todoctl bench --count 1000 --concurrency 8
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/diffeo/go-todoapi/restclient"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// DefaultURL is where todoapid listens by default.
const DefaultURL = "http://localhost:3000/"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "todoctl"
	app.Usage = "manage users and todos through the REST API"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "url",
			Value: DefaultURL,
			Usage: "base URL of the todoapid server",
		},
	}
	app.Commands = []cli.Command{
		listUsers,
		getUser,
		addUser,
		updateUser,
		deleteUser,
		listTodos,
		getTodo,
		addTodo,
		updateTodo,
		markDone,
		deleteTodo,
		benchTodos,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("todoctl failed")
	}
}

// service connects to the server named by the global --url flag.
func service(c *cli.Context) (todoapi.Service, error) {
	return restclient.New(c.GlobalString("url"))
}

// idArg parses the single positional record id of a command.
func idArg(c *cli.Context) (int, error) {
	if c.NArg() != 1 {
		return 0, errors.Errorf("%v needs exactly one id", c.Command.Name)
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, errors.Wrap(err, "bad id")
	}
	return id, nil
}

// printYAML writes records to the app's output.
func printYAML(w io.Writer, records interface{}) error {
	out, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
