// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Suitegen writes a test file that runs every test of a shared test
// package.  The test functions should be normal, public functions in
// non-test source files.  Usage:
//
//     suitegen --output todoapitest_test.go --package memory_test \
//         --import github.com/diffeo/go-todoapi/todoapi/todoapitest \
//         ../todoapi/todoapitest
//
// This supports shared tests for an interface, such as
// github.com/diffeo/go-todoapi/todoapi/todoapitest.  "go test"
// only runs test functions declared in the package under test, so a
// directory of reusable tests needs a wrapper for each one:
//
//     package memory_test
//
//     func TestUserLifecycle(t *testing.T) {
//             todoapitest.TestUserLifecycle(t)
//     }
//
// The package under test still needs, in a separate file, an init
// function that tells the shared tests what to test.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "suitegen"
	app.Usage = "Write wrappers for a package of shared tests"
	app.ArgsUsage = "source-dir"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "output",
			Usage: "write the wrappers to this file instead of stdout",
		},
		cli.StringFlag{
			Name:  "package",
			Usage: "put generated file in this package",
			Value: "test_test",
		},
		cli.StringFlag{
			Name:  "import",
			Usage: "import path of the shared test package",
		},
		cli.StringSliceFlag{
			Name:  "except",
			Usage: "do not wrap these functions",
		},
	}
	app.HideVersion = true
	app.Action = generate
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("suitegen failed")
	}
}

func generate(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one source directory is required")
	}
	if c.String("import") == "" {
		return errors.New("--import is required")
	}
	suite, err := readSuite(c.Args().First(), c.String("import"), c.StringSlice("except"))
	if err != nil {
		return err
	}
	suite.Package = c.String("package")
	suite.Command = "suitegen " + c.String("import")

	output := os.Stdout
	if name := c.String("output"); name != "" {
		output, err = os.Create(name)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer output.Close()
	}
	return suite.Write(output)
}
