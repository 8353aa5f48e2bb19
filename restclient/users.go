// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"strconv"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/todoapi"
)

func userVars(id int) map[string]interface{} {
	return map[string]interface{}{"id": strconv.Itoa(id)}
}

func (c *restClient) Users() ([]todoapi.User, error) {
	users := []todoapi.User{}
	err := c.GetFrom(restdata.UserURLTemplate, map[string]interface{}{}, &users)
	if err != nil {
		return nil, recordError(err, "", 0)
	}
	return users, nil
}

func (c *restClient) User(id int) (user todoapi.User, err error) {
	err = c.GetFrom(restdata.UserURLTemplate, userVars(id), &user)
	return user, recordError(err, "user", id)
}

func (c *restClient) CreateUser(fields todoapi.NewUser) (user todoapi.User, err error) {
	body := restdata.UserBody{Name: fields.Name, Email: fields.Email}
	err = c.PostTo(restdata.UserURLTemplate, map[string]interface{}{}, body, &user)
	return user, recordError(err, "", 0)
}

func (c *restClient) ReplaceUser(id int, fields todoapi.NewUser) (user todoapi.User, err error) {
	body := restdata.UserBody{ID: id, Name: fields.Name, Email: fields.Email}
	err = c.PutTo(restdata.UserURLTemplate, userVars(id), body, &user)
	return user, recordError(err, "user", id)
}

func (c *restClient) DeleteUser(id int) error {
	return recordError(c.DeleteAt(restdata.UserURLTemplate, userVars(id)), "user", id)
}
