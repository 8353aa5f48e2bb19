// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Todoapid serves the users and todos REST API from memory.  Records
// start out as a small built-in seed, or as the content of a YAML file:
//
//     users:
//       - {id: 1, name: Alice, email: alice@example.com}
//     todos:
//       - {id: 1, title: Buy milk, done: false, userId: 1}
//
// Nothing is written back; every restart begins again from the seed.
//
// With --backend rest:URL it instead validates requests and forwards
// them to another server, and the seed is not used.
package main

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-todoapi/backend"
	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/schema"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

func main() {
	storage := backend.Backend{Implementation: "memory"}
	app := cli.NewApp()
	app.Name = "todoapid"
	app.Usage = "serve the users and todos REST API"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "http",
			Value: ":3000",
			Usage: "[ip]:port for HTTP REST interface",
		},
		cli.GenericFlag{
			Name:  "backend",
			Value: &storage,
			Usage: "impl[:address] of the storage backend",
		},
		cli.StringFlag{
			Name:  "seed",
			Usage: "YAML file of initial users and todos",
		},
		cli.BoolFlag{
			Name:  "log-requests",
			Usage: "log all requests",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "minimum level of log messages",
		},
	}
	app.Action = func(c *cli.Context) error {
		return serve(c, &storage)
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not run server")
	}
}

func serve(c *cli.Context, storage *backend.Backend) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return errors.Wrap(err, "bad --log-level")
	}
	logrus.SetLevel(level)

	seed := todoapi.DefaultSeed()
	if filename := c.String("seed"); filename != "" {
		seed, err = loadSeedYaml(filename)
		if err != nil {
			return err
		}
	}
	svc, err := storage.Service(seed)
	if err != nil {
		return errors.Wrap(err, "could not create backend")
	}

	var reqLogger *logrus.Logger
	if c.Bool("log-requests") {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	server := &HTTP{
		Service:    svc,
		Laddr:      c.String("http"),
		Log:        logrus.StandardLogger(),
		RequestLog: reqLogger,
		Clock:      clock.New(),
	}
	logrus.WithFields(logrus.Fields{
		"addr":    server.Laddr,
		"backend": storage.String(),
	}).Info("Serving HTTP")
	return server.Serve()
}

// loadSeedYaml reads a seed file.  Every record must have a positive
// id, unique within its collection, and must pass the same checks as
// a request body.
func loadSeedYaml(filename string) (todoapi.Seed, error) {
	var seed todoapi.Seed
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		return seed, errors.Wrap(err, "reading seed")
	}
	if err = yaml.UnmarshalStrict(content, &seed); err != nil {
		return seed, errors.Wrapf(err, "parsing seed %v", filename)
	}
	ids := make([]int, len(seed.Users))
	for i, user := range seed.Users {
		ids[i] = user.ID
	}
	if err = checkIDs("user", ids); err != nil {
		return seed, errors.Wrapf(err, "bad seed %v", filename)
	}
	ids = make([]int, len(seed.Todos))
	for i, todo := range seed.Todos {
		ids[i] = todo.ID
	}
	if err = checkIDs("todo", ids); err != nil {
		return seed, errors.Wrapf(err, "bad seed %v", filename)
	}
	if err = checkRecords(seed); err != nil {
		return seed, errors.Wrapf(err, "bad seed %v", filename)
	}
	return seed, nil
}

// checkRecords validates every seed record against its schema.
func checkRecords(seed todoapi.Seed) error {
	v, err := schema.New()
	if err != nil {
		return err
	}
	for _, user := range seed.Users {
		if err := checkRecord(v, schema.UserName, user); err != nil {
			return errors.Wrapf(err, "user %v", user.ID)
		}
	}
	for _, todo := range seed.Todos {
		if err := checkRecord(v, schema.TodoName, todo); err != nil {
			return errors.Wrapf(err, "todo %v", todo.ID)
		}
	}
	return nil
}

// checkRecord puts record in its wire form and validates that.
func checkRecord(v *schema.Validator, name string, record interface{}) error {
	var buf bytes.Buffer
	if err := restdata.Encode(&buf, record); err != nil {
		return err
	}
	value, err := schema.ReadJSON(&buf)
	if err != nil {
		return err
	}
	return v.Check(name, value)
}

func checkIDs(resource string, ids []int) error {
	seen := make(map[int]bool)
	for _, id := range ids {
		if id <= 0 {
			return errors.Errorf("%v id %v is not positive", resource, id)
		}
		if seen[id] {
			return errors.Errorf("duplicate %v id %v", resource, id)
		}
		seen[id] = true
	}
	return nil
}
