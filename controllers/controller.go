package controllers

import (
	"shopstack-backend/media"
	"shopstack-backend/store"
)

// Controller holds the dependencies shared by every handler.
type Controller struct {
	Store *store.Store
	Media media.Storage
}

// New wires a Controller.
func New(s *store.Store, m media.Storage) *Controller {
	return &Controller{Store: s, Media: m}
}
